package algo

import (
	"cmp"
	"fmt"
	"math"

	"github.com/huangsam/llmpick/schema"
)

// missingTTFT is the sentinel latency for models without a ttft_ms score.
// It is larger than any observed value so those models sort last.
var missingTTFT = math.Inf(1)

// ScenarioRule binds a scenario to its predicate, comparator and relevant benchmarks.
type ScenarioRule struct {
	Scenario           schema.Scenario
	Title              string
	Criteria           string
	Ordering           string
	RelevantBenchmarks []schema.BenchmarkKey
	Predicate          func(m schema.ModelRecord) bool
	Compare            func(a, b schema.ModelRecord) int
}

// Info returns the serializable description of the rule.
func (r ScenarioRule) Info() schema.ScenarioInfo {
	return schema.ScenarioInfo{
		Scenario:           r.Scenario,
		Title:              r.Title,
		Criteria:           r.Criteria,
		Ordering:           r.Ordering,
		RelevantBenchmarks: append([]schema.BenchmarkKey(nil), r.RelevantBenchmarks...),
	}
}

var ruleTable = map[schema.Scenario]ScenarioRule{
	schema.CodingScenario: {
		Scenario:           schema.CodingScenario,
		Title:              "Complex Coding",
		Criteria:           "reasoning >= Advanced and coding >= Advanced",
		Ordering:           "live_code_bench + math_500 desc",
		RelevantBenchmarks: []schema.BenchmarkKey{schema.LiveCodeBench, schema.Math500},
		Predicate:          codingPredicate,
		Compare:            codingCompare,
	},
	schema.ChatScenario: {
		Scenario:           schema.ChatScenario,
		Title:              "High-Load Chat",
		Criteria:           "architecture == MoE",
		Ordering:           "ttft_ms asc, then la_perf desc",
		RelevantBenchmarks: []schema.BenchmarkKey{schema.TTFTMs, schema.LaPerf},
		Predicate:          chatPredicate,
		Compare:            chatCompare,
	},
	schema.DocumentsScenario: {
		Scenario:           schema.DocumentsScenario,
		Title:              "Document Analysis",
		Criteria:           "context_window >= 128000 tokens",
		Ordering:           "ifeval desc, then mmlu_pro desc",
		RelevantBenchmarks: []schema.BenchmarkKey{schema.IFEval, schema.MMLUPro},
		Predicate:          documentsPredicate,
		Compare:            documentsCompare,
	},
}

// GetRule returns the rule for a scenario.
func GetRule(scenario schema.Scenario) (ScenarioRule, error) {
	rule, ok := ruleTable[scenario]
	if !ok {
		return ScenarioRule{}, fmt.Errorf("%w: unknown scenario '%s'. must be coding, chat, documents", ErrInvalidArgument, scenario)
	}
	return rule, nil
}

// AllRules returns every rule in scenario display order.
func AllRules() []ScenarioRule {
	rules := make([]ScenarioRule, 0, len(schema.AllScenarios))
	for _, s := range schema.AllScenarios {
		rules = append(rules, ruleTable[s])
	}
	return rules
}

func codingPredicate(m schema.ModelRecord) bool {
	return atLeast(m.Capabilities.Reasoning, schema.AdvancedLevel) &&
		atLeast(m.Capabilities.Coding, schema.AdvancedLevel)
}

// codingScore sums live_code_bench and math_500. The sum is undefined when either part is missing.
func codingScore(m schema.ModelRecord) (float64, bool) {
	lcb, ok := m.Score(schema.LiveCodeBench)
	if !ok {
		return 0, false
	}
	math500, ok := m.Score(schema.Math500)
	if !ok {
		return 0, false
	}
	return lcb + math500, true
}

func codingCompare(a, b schema.ModelRecord) int {
	sa, oka := codingScore(a)
	sb, okb := codingScore(b)
	return compareDesc(sa, oka, sb, okb)
}

func chatPredicate(m schema.ModelRecord) bool {
	return m.Architecture == schema.MoEArch
}

func chatCompare(a, b schema.ModelRecord) int {
	if c := cmp.Compare(ttftOf(a), ttftOf(b)); c != 0 {
		return c
	}
	pa, oka := a.Score(schema.LaPerf)
	pb, okb := b.Score(schema.LaPerf)
	return compareDesc(pa, oka, pb, okb)
}

func ttftOf(m schema.ModelRecord) float64 {
	if v, ok := m.Score(schema.TTFTMs); ok {
		return v
	}
	return missingTTFT
}

func documentsPredicate(m schema.ModelRecord) bool {
	return m.ContextWindow >= schema.LongContextThreshold
}

func documentsCompare(a, b schema.ModelRecord) int {
	ia, oka := a.Score(schema.IFEval)
	ib, okb := b.Score(schema.IFEval)
	if c := compareDesc(ia, oka, ib, okb); c != 0 {
		return c
	}
	ma, oka := a.Score(schema.MMLUPro)
	mb, okb := b.Score(schema.MMLUPro)
	return compareDesc(ma, oka, mb, okb)
}

// compareDesc orders defined values descending and puts undefined values last.
// Two undefined values compare equal.
func compareDesc(a float64, okA bool, b float64, okB bool) int {
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	default:
		return cmp.Compare(b, a)
	}
}
