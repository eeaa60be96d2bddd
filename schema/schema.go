// Package schema has the catalog model, selection state and result types for all parts of llmpick.
package schema

// Capabilities holds the ordinal capability ratings of a model.
type Capabilities struct {
	Reasoning CapabilityLevel `json:"reasoning"`
	Coding    CapabilityLevel `json:"coding"`
}

// ModelRecord describes one deployable model. Records are immutable once loaded.
type ModelRecord struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	Architecture      Architecture             `json:"architecture"`
	TotalParams       float64                  `json:"total_params"`         // Billions
	ActiveParams      float64                  `json:"active_params"`        // Billions
	ContextWindow     int                      `json:"context_window"`       // Raw tokens
	Reasoning         bool                     `json:"reasoning"`            // Has a reasoning mode
	Visual            bool                     `json:"visual"`               // Accepts image input
	OpenSource        LicenseStatus            `json:"open_source"`          // Distribution status
	Speed             float64                  `json:"speed"`                // Tokens per second
	MemoryFootprint   map[Precision]float64    `json:"memory"`               // GB per precision mode
	CostPer100kTokens float64                  `json:"cost_per_100k_tokens"` // KV cache GB per 100k tokens
	Capabilities      Capabilities             `json:"capabilities"`
	BenchmarkScores   map[BenchmarkKey]float64 `json:"benchmarks"` // Absent key means not measured
}

// Score returns the benchmark value and whether it was measured.
func (m ModelRecord) Score(key BenchmarkKey) (float64, bool) {
	v, ok := m.BenchmarkScores[key]
	return v, ok
}

// Memory returns the footprint for a precision mode and whether it is known.
func (m ModelRecord) Memory(p Precision) (float64, bool) {
	v, ok := m.MemoryFootprint[p]
	return v, ok
}

// IsLarge reports whether the model falls into the large size bucket.
func (m ModelRecord) IsLarge() bool {
	return m.TotalParams >= LargeModelThreshold
}

// UserFilters are scenario-orthogonal toggles. Every enabled toggle is ANDed.
type UserFilters struct {
	MoEOrHybrid bool `json:"moe_or_hybrid" mapstructure:"moe_or_hybrid"`
	Reasoning   bool `json:"reasoning" mapstructure:"reasoning"`
	OpenSource  bool `json:"open_source" mapstructure:"open_source"`
	Visual      bool `json:"visual" mapstructure:"visual"`
	LongContext bool `json:"long_context" mapstructure:"long_context"`
}

// SelectionState is the user's current selection. It is owned by the caller
// and passed by value into the ranking engine.
type SelectionState struct {
	Scenario   Scenario     `json:"scenario" mapstructure:"scenario"`
	FilterMode FilterMode   `json:"filter_mode" mapstructure:"filter_mode"`
	SortMode   SortMode     `json:"sort_mode" mapstructure:"sort_mode"`
	Benchmark  BenchmarkKey `json:"benchmark" mapstructure:"benchmark"`
	Filters    UserFilters  `json:"filters" mapstructure:"filters"`
}

// RankedResult is the engine output for a single selection.
type RankedResult struct {
	Models    []ModelRecord      `json:"models"`     // Display set in display order
	ActiveIDs map[string]bool    `json:"active_ids"` // Scenario predicate per displayed id
	Intensity map[string]float64 `json:"intensity"`  // Only ids with a defined score
}

// IsActive reports whether the model with the given id matches the scenario.
func (r RankedResult) IsActive(id string) bool {
	return r.ActiveIDs[id]
}

// IntensityOf returns the normalized intensity for an id and whether one exists.
func (r RankedResult) IntensityOf(id string) (float64, bool) {
	v, ok := r.Intensity[id]
	return v, ok
}

// TopPick returns the first displayed active model, if any.
func (r RankedResult) TopPick() (ModelRecord, bool) {
	for _, m := range r.Models {
		if r.ActiveIDs[m.ID] {
			return m, true
		}
	}
	return ModelRecord{}, false
}
