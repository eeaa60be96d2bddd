package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/huangsam/llmpick/core"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// rankArgs are the arguments of the rank_models tool.
type rankArgs struct {
	Scenario   string             `mapstructure:"scenario"`
	FilterMode string             `mapstructure:"filter_mode"`
	SortMode   string             `mapstructure:"sort_mode"`
	Benchmark  string             `mapstructure:"benchmark"`
	Limit      int                `mapstructure:"limit"`
	Filters    schema.UserFilters `mapstructure:",squash"`
}

// listArgs are the arguments of the list_models tool.
type listArgs struct {
	Filters schema.UserFilters `mapstructure:",squash"`
}

// decodeArgs decodes tool arguments into out, rejecting unknown keys.
func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(args)
}

// jsonResult marshals data as an indented JSON text result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankModels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args rankArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	sel, err := contract.ParseSelection(args.Scenario, args.FilterMode, args.SortMode, args.Benchmark)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}
	sel.Filters = args.Filters

	if args.Limit < 0 || args.Limit > contract.MaxResultLimit {
		return mcp.NewToolResultError(fmt.Sprintf("limit must be between 0 and %d", contract.MaxResultLimit)), nil
	}

	cfg := h.baseCfg.CloneWithSelection(sel)
	cfg.Limit = args.Limit

	output, _, err := core.GetRankResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}
	return jsonResult(output)
}

func (h *toolHandler) handleListModels(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	cfg := h.baseCfg.Clone()
	cfg.Selection.Filters = args.Filters

	models, err := core.GetModels(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}
	return jsonResult(models)
}

func (h *toolHandler) handleListScenarios(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(core.GetScenarioInfos())
}
