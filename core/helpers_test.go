package core

import (
	"testing"

	"github.com/huangsam/llmpick/internal/catalog"
	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/require"
)

// testCatalog returns a three-model catalog: a large dense model, a
// reasoning MoE model and a small chat model, in that order.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	models := []schema.ModelRecord{
		{
			ID: "big-dense", Name: "Big Dense 70B", Architecture: schema.DenseArch,
			TotalParams: 70, ActiveParams: 70, ContextWindow: 32768,
			OpenSource:   schema.OpenWeightsStatus,
			Capabilities: schema.Capabilities{Reasoning: schema.GoodLevel, Coding: schema.GoodLevel},
			BenchmarkScores: map[schema.BenchmarkKey]float64{
				schema.LiveCodeBench: 40, schema.Math500: 70,
			},
		},
		{
			ID: "thinker", Name: "Thinker 30B-A3B", Architecture: schema.MoEArch,
			TotalParams: 30, ActiveParams: 3, ContextWindow: 131072, Reasoning: true,
			OpenSource:   schema.OpenSourceStatus,
			Capabilities: schema.Capabilities{Reasoning: schema.ExcellentLevel, Coding: schema.AdvancedLevel},
			BenchmarkScores: map[schema.BenchmarkKey]float64{
				schema.LiveCodeBench: 60, schema.Math500: 90, schema.TTFTMs: 300, schema.LaPerf: 50,
			},
		},
		{
			ID: "small-chat", Name: "Small Chat 8B", Architecture: schema.MoEArch,
			TotalParams: 8, ActiveParams: 2, ContextWindow: 32768,
			OpenSource:   schema.OpenWeightsStatus,
			Capabilities: schema.Capabilities{Reasoning: schema.BasicLevel, Coding: schema.GoodLevel},
			BenchmarkScores: map[schema.BenchmarkKey]float64{
				schema.TTFTMs: 150, schema.LaPerf: 40,
			},
		},
	}
	cat, err := catalog.New("test", models)
	require.NoError(t, err)
	return cat
}

// codingSelection is the default highlight selection for the coding scenario.
func codingSelection() schema.SelectionState {
	return schema.SelectionState{
		Scenario:   schema.CodingScenario,
		FilterMode: schema.HighlightFilter,
		SortMode:   schema.BySize,
	}
}
