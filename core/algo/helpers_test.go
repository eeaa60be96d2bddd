package algo

import "github.com/huangsam/llmpick/schema"

type modelOpt func(*schema.ModelRecord)

// model builds a small dense record with sensible defaults for tests.
func model(id string, opts ...modelOpt) schema.ModelRecord {
	m := schema.ModelRecord{
		ID:              id,
		Name:            id,
		Architecture:    schema.DenseArch,
		TotalParams:     8,
		ActiveParams:    8,
		ContextWindow:   32768,
		OpenSource:      schema.OpenWeightsStatus,
		Speed:           100,
		MemoryFootprint: map[schema.Precision]float64{schema.FP16: 16},
		Capabilities:    schema.Capabilities{Reasoning: schema.BasicLevel, Coding: schema.BasicLevel},
		BenchmarkScores: map[schema.BenchmarkKey]float64{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func withCaps(reasoning, coding schema.CapabilityLevel) modelOpt {
	return func(m *schema.ModelRecord) {
		m.Capabilities = schema.Capabilities{Reasoning: reasoning, Coding: coding}
	}
}

func withArch(a schema.Architecture) modelOpt {
	return func(m *schema.ModelRecord) { m.Architecture = a }
}

func withContext(tokens int) modelOpt {
	return func(m *schema.ModelRecord) { m.ContextWindow = tokens }
}

func withParams(total float64) modelOpt {
	return func(m *schema.ModelRecord) {
		m.TotalParams = total
		m.ActiveParams = total
	}
}

func withScore(key schema.BenchmarkKey, v float64) modelOpt {
	return func(m *schema.ModelRecord) { m.BenchmarkScores[key] = v }
}

func withReasoning() modelOpt {
	return func(m *schema.ModelRecord) { m.Reasoning = true }
}

func withVisual() modelOpt {
	return func(m *schema.ModelRecord) { m.Visual = true }
}

func withLicense(s schema.LicenseStatus) modelOpt {
	return func(m *schema.ModelRecord) { m.OpenSource = s }
}

func ids(models []schema.ModelRecord) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.ID
	}
	return out
}

func strict(s schema.Scenario) schema.SelectionState {
	return schema.SelectionState{Scenario: s, FilterMode: schema.StrictFilter, SortMode: schema.BySize}
}

func highlight(s schema.Scenario) schema.SelectionState {
	return schema.SelectionState{Scenario: s, FilterMode: schema.HighlightFilter, SortMode: schema.BySize}
}
