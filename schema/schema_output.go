package schema

// RankedModel adds presentation data to a displayed model.
type RankedModel struct {
	Rank      int        `json:"rank"`
	Bucket    SizeBucket `json:"bucket"`
	Active    bool       `json:"active"`
	TopPick   bool       `json:"top_pick"`
	Intensity *float64   `json:"intensity,omitempty"`
	ModelRecord
}

// RankedOutput is the serialized form of a ranking, shared by JSON and MCP output.
type RankedOutput struct {
	Selection SelectionState `json:"selection"`
	Title     string         `json:"title"`
	Criteria  string         `json:"criteria"`
	Models    []RankedModel  `json:"models"`
}

// ScenarioInfo is the serialized form of a scenario rule.
type ScenarioInfo struct {
	Scenario           Scenario       `json:"scenario"`
	Title              string         `json:"title"`
	Criteria           string         `json:"criteria"`
	Ordering           string         `json:"ordering"`
	RelevantBenchmarks []BenchmarkKey `json:"relevant_benchmarks"`
}

// BucketOf returns the size bucket of a model.
func BucketOf(m ModelRecord) SizeBucket {
	if m.IsLarge() {
		return LargeBucket
	}
	return SmallBucket
}

// EnrichRanked adds rank, bucket, activity, top pick and intensity to a ranking.
func EnrichRanked(result RankedResult) []RankedModel {
	output := make([]RankedModel, len(result.Models))
	top, hasTop := result.TopPick()
	for i, m := range result.Models {
		rm := RankedModel{
			Rank:        i + 1,
			Bucket:      BucketOf(m),
			Active:      result.IsActive(m.ID),
			TopPick:     hasTop && top.ID == m.ID,
			ModelRecord: m,
		}
		if v, ok := result.IntensityOf(m.ID); ok {
			rm.Intensity = &v
		}
		output[i] = rm
	}
	return output
}
