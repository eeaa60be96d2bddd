package algo

import (
	"errors"
	"testing"

	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRule(t *testing.T) {
	for _, s := range schema.AllScenarios {
		t.Run(string(s), func(t *testing.T) {
			rule, err := GetRule(s)
			require.NoError(t, err)
			assert.Equal(t, s, rule.Scenario)
			assert.NotEmpty(t, rule.Title)
			assert.Len(t, rule.RelevantBenchmarks, 2)
			assert.NotNil(t, rule.Predicate)
			assert.NotNil(t, rule.Compare)
		})
	}

	_, err := GetRule("gaming")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAllRulesOrder(t *testing.T) {
	rules := AllRules()
	require.Len(t, rules, 3)
	assert.Equal(t, schema.CodingScenario, rules[0].Scenario)
	assert.Equal(t, schema.ChatScenario, rules[1].Scenario)
	assert.Equal(t, schema.DocumentsScenario, rules[2].Scenario)

	info := rules[1].Info()
	assert.Equal(t, []schema.BenchmarkKey{schema.TTFTMs, schema.LaPerf}, info.RelevantBenchmarks)
}

func TestScenarioPredicates(t *testing.T) {
	tests := []struct {
		name     string
		scenario schema.Scenario
		model    schema.ModelRecord
		expected bool
	}{
		{
			name:     "coding both advanced",
			scenario: schema.CodingScenario,
			model:    model("m", withCaps(schema.AdvancedLevel, schema.AdvancedLevel)),
			expected: true,
		},
		{
			name:     "coding weak reasoning",
			scenario: schema.CodingScenario,
			model:    model("m", withCaps(schema.GoodLevel, schema.ThinkModeLevel)),
			expected: false,
		},
		{
			name:     "chat moe",
			scenario: schema.ChatScenario,
			model:    model("m", withArch(schema.MoEArch)),
			expected: true,
		},
		{
			name:     "chat hybrid moe is not moe",
			scenario: schema.ChatScenario,
			model:    model("m", withArch(schema.HybridMoEArch)),
			expected: false,
		},
		{
			name:     "documents exactly threshold",
			scenario: schema.DocumentsScenario,
			model:    model("m", withContext(128000)),
			expected: true,
		},
		{
			name:     "documents below threshold",
			scenario: schema.DocumentsScenario,
			model:    model("m", withContext(127999)),
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := GetRule(tt.scenario)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rule.Predicate(tt.model))
		})
	}
}

func TestCodingScoreMissingPart(t *testing.T) {
	_, ok := codingScore(model("m", withScore(schema.LiveCodeBench, 90)))
	assert.False(t, ok, "sum is undefined when math_500 is missing")

	s, ok := codingScore(model("m", withScore(schema.LiveCodeBench, 90), withScore(schema.Math500, 80)))
	assert.True(t, ok)
	assert.InDelta(t, 170.0, s, 1e-9)
}

func TestCompareDesc(t *testing.T) {
	assert.Equal(t, -1, compareDesc(10, true, 5, true))
	assert.Equal(t, 1, compareDesc(5, true, 10, true))
	assert.Equal(t, 0, compareDesc(5, true, 5, true))
	assert.Equal(t, -1, compareDesc(0, true, 100, false), "defined zero beats missing")
	assert.Equal(t, 1, compareDesc(100, false, 0, true))
	assert.Equal(t, 0, compareDesc(1, false, 2, false))
}
