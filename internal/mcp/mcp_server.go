// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"
	"strings"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed by the server.
const (
	RankModelsTool    = "rank_models"
	ListModelsTool    = "list_models"
	ListScenariosTool = "list_scenarios"
)

// filterOptions returns the boolean user filter arguments shared by several tools.
func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithBoolean("moe_or_hybrid", mcp.Description("Only keep MoE and hybrid architectures.")),
		mcp.WithBoolean("reasoning", mcp.Description("Only keep models with a reasoning mode.")),
		mcp.WithBoolean("open_source", mcp.Description("Only keep fully open source models.")),
		mcp.WithBoolean("visual", mcp.Description("Only keep models that accept image input.")),
		mcp.WithBoolean("long_context", mcp.Description("Only keep models with at least 128k tokens of context.")),
	}
}

func benchmarkEnum() []string {
	keys := make([]string, 0, len(schema.AllBenchmarks)+1)
	keys = append(keys, "none")
	for _, k := range schema.AllBenchmarks {
		keys = append(keys, string(k))
	}
	return keys
}

// NewMCPServer initializes and configures the llmpick MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"llmpick Model Selection Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: rank_models ---
	rankOpts := []mcp.ToolOption{
		mcp.WithDescription("Rank local LLMs for a usage scenario. Strict mode drops non-matching models; highlight mode keeps all and marks matches."),
		mcp.WithString("scenario", mcp.Description("Usage scenario. Defaults to 'coding'."), mcp.Enum("coding", "chat", "documents")),
		mcp.WithString("filter_mode", mcp.Description("How the scenario predicate is applied. Defaults to 'highlight'."), mcp.Enum("strict", "highlight")),
		mcp.WithString("sort_mode", mcp.Description("Highlight ordering: by size or by the chosen benchmark. Defaults to 'size'."), mcp.Enum("size", "value")),
		mcp.WithString("benchmark", mcp.Description("Benchmark to display and normalize ("+strings.Join(benchmarkEnum(), ", ")+")."), mcp.Enum(benchmarkEnum()...)),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned (0 returns all).")),
	}
	s.AddTool(mcp.NewTool(RankModelsTool, append(rankOpts, filterOptions()...)...), h.handleRankModels)

	// --- 2. Tool: list_models ---
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List catalog models with architecture, parameters, context window, memory and benchmark scores."),
	}
	s.AddTool(mcp.NewTool(ListModelsTool, append(listOpts, filterOptions()...)...), h.handleListModels)

	// --- 3. Tool: list_scenarios ---
	s.AddTool(mcp.NewTool(ListScenariosTool,
		mcp.WithDescription("Describe each scenario: its matching criteria, ordering and relevant benchmarks."),
	), h.handleListScenarios)

	return s
}

// StartMCPServer starts the llmpick MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
