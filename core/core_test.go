package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/internal/iocache"
	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		Selection:  codingSelection(),
		Precision:  contract.DefaultPrecision,
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "out.json"),
	}
}

// TestExecuteRank tests the main ranking entry point against the embedded catalog.
func TestExecuteRank(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	mockCacheMgr := &iocache.MockCacheManager{}
	mockCacheMgr.On("GetRankStore").Return(nil) // No caching for test

	cfg := jsonConfig(t)
	cfg.Limit = 5
	require.NoError(t, ExecuteRank(ctx, cfg, mockCacheMgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var output schema.RankedOutput
	require.NoError(t, json.Unmarshal(data, &output))

	assert.Equal(t, "Complex Coding", output.Title)
	assert.Len(t, output.Models, 5)
	assert.Equal(t, 1, output.Models[0].Rank)

	mockCacheMgr.AssertExpectations(t)
}

// TestExecuteRankMissingCatalog tests that a bad catalog path is reported.
func TestExecuteRankMissingCatalog(t *testing.T) {
	cfg := jsonConfig(t)
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")

	err := ExecuteRank(WithSuppressHeader(context.Background()), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

// TestExecuteModels tests the catalog listing entry point with a user filter.
func TestExecuteModels(t *testing.T) {
	cfg := jsonConfig(t)
	cfg.Selection.Filters.LongContext = true
	require.NoError(t, ExecuteModels(context.Background(), cfg, nil))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var models []schema.ModelRecord
	require.NoError(t, json.Unmarshal(data, &models))
	require.NotEmpty(t, models)
	for _, m := range models {
		assert.GreaterOrEqual(t, m.ContextWindow, schema.LongContextThreshold, m.ID)
	}
}

// TestExecuteScenarios tests the rule listing entry point.
func TestExecuteScenarios(t *testing.T) {
	cfg := jsonConfig(t)
	require.NoError(t, ExecuteScenarios(context.Background(), cfg, nil))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var infos []schema.ScenarioInfo
	require.NoError(t, json.Unmarshal(data, &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, schema.CodingScenario, infos[0].Scenario)
	assert.Equal(t, schema.DocumentsScenario, infos[2].Scenario)
}

func TestGetScenarioInfos(t *testing.T) {
	infos := GetScenarioInfos()
	require.Len(t, infos, len(schema.AllScenarios))
	for i, s := range schema.AllScenarios {
		assert.Equal(t, s, infos[i].Scenario)
		assert.NotEmpty(t, infos[i].RelevantBenchmarks)
	}
}

func TestGetModels(t *testing.T) {
	cfg := &contract.Config{}
	all, err := GetModels(cfg)
	require.NoError(t, err)

	cfg.Selection.Filters.Reasoning = true
	reasoning, err := GetModels(cfg)
	require.NoError(t, err)
	assert.Less(t, len(reasoning), len(all))
	for _, m := range reasoning {
		assert.True(t, m.Reasoning, m.ID)
	}
}
