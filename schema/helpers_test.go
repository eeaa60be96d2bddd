package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContext(t *testing.T) {
	tests := []struct {
		name     string
		tokens   int
		expected string
	}{
		{"small", 16384, "16k"},
		{"documents threshold", 128000, "128k"},
		{"power of two", 131072, "131k"},
		{"one million", 1000000, "1.0M"},
		{"ten million", 10000000, "10.0M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatContext(tt.tokens))
		})
	}
}

func TestFormatParamsPair(t *testing.T) {
	assert.Equal(t, "32B", FormatParamsPair(32, 32))
	assert.Equal(t, "117B (5B active)", FormatParamsPair(117, 5))
	assert.Equal(t, "7.5B", FormatParams(7.5))
}

func TestFormatMemory(t *testing.T) {
	m := ModelRecord{MemoryFootprint: map[Precision]float64{INT4: 20, FP16: 65.5}}
	assert.Equal(t, "fp16:65.5 int4:20", FormatMemory(m))
	assert.Equal(t, "-", FormatMemory(ModelRecord{}))
}

func TestFormatFlags(t *testing.T) {
	m := ModelRecord{Reasoning: true, Visual: false, ContextWindow: 262144}
	assert.Equal(t, "reasoning,long-context", FormatFlags(m))
	assert.Empty(t, FormatFlags(ModelRecord{ContextWindow: 32768}))
}

func TestBenchmarkKeyHelpers(t *testing.T) {
	assert.True(t, TTFTMs.LowerIsBetter())
	assert.False(t, MMLUPro.LowerIsBetter())
	assert.Equal(t, "LiveCodeBench", LiveCodeBench.Label())
	assert.Equal(t, "unknown_key", BenchmarkKey("unknown_key").Label())
	assert.Len(t, AllBenchmarks, len(ValidBenchmarks))
}

func TestEnrichRanked(t *testing.T) {
	result := RankedResult{
		Models: []ModelRecord{
			{ID: "big", TotalParams: 120},
			{ID: "small", TotalParams: 8},
		},
		ActiveIDs: map[string]bool{"big": false, "small": true},
		Intensity: map[string]float64{"small": 0.5},
	}

	enriched := EnrichRanked(result)
	assert.Len(t, enriched, 2)

	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, LargeBucket, enriched[0].Bucket)
	assert.False(t, enriched[0].Active)
	assert.False(t, enriched[0].TopPick)
	assert.Nil(t, enriched[0].Intensity)

	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, SmallBucket, enriched[1].Bucket)
	assert.True(t, enriched[1].TopPick)
	if assert.NotNil(t, enriched[1].Intensity) {
		assert.InDelta(t, 0.5, *enriched[1].Intensity, 1e-9)
	}
}
