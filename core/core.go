// Package core has core logic for ranking, listing and caching model selections.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/llmpick/core/algo"
	"github.com/huangsam/llmpick/internal/catalog"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/internal/outwriter"
	"github.com/huangsam/llmpick/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteRank ranks the catalog for the configured selection and prints the result.
// It serves as the main entry point for the 'rank' and 'pick' commands.
func ExecuteRank(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	output, duration, err := GetRankResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteRanked(output, cfg, duration)
}

// ExecuteModels prints the catalog records that pass the user filters.
func ExecuteModels(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	models := algo.ApplyFilters(cat.Models(), cfg.Selection.Filters)
	return outwriter.WriteModels(models, cat.Source(), cfg)
}

// ExecuteScenarios prints the scenario rule table.
func ExecuteScenarios(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.WriteScenarios(GetScenarioInfos(), cfg)
}

// GetRankResults loads the catalog, ranks it for the configured selection and
// returns the presentation-ready output with the time it took.
func GetRankResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.RankedOutput, time.Duration, error) {
	start := time.Now()
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return schema.RankedOutput{}, 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	if !shouldSuppressHeader(ctx) {
		outwriter.LogRankHeader(cfg, cat.Source(), cat.Len())
	}

	result, err := cachedRank(ctx, cat, cfg.Selection, mgr)
	if err != nil {
		return schema.RankedOutput{}, 0, err
	}
	output, err := BuildRankedOutput(result, cfg.Selection, cfg.Limit)
	if err != nil {
		return schema.RankedOutput{}, 0, err
	}
	return output, time.Since(start), nil
}

// GetModels returns the catalog records that pass the user filters.
func GetModels(cfg *contract.Config) ([]schema.ModelRecord, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return algo.ApplyFilters(cat.Models(), cfg.Selection.Filters), nil
}

// GetScenarioInfos returns the description of every scenario rule in display order.
func GetScenarioInfos() []schema.ScenarioInfo {
	rules := algo.AllRules()
	infos := make([]schema.ScenarioInfo, len(rules))
	for i, r := range rules {
		infos[i] = r.Info()
	}
	return infos
}
