package algo

import "github.com/huangsam/llmpick/schema"

// MatchesFilters reports whether a model passes every enabled user filter.
func MatchesFilters(m schema.ModelRecord, f schema.UserFilters) bool {
	if f.MoEOrHybrid && m.Architecture == schema.DenseArch {
		return false
	}
	if f.Reasoning && !m.Reasoning {
		return false
	}
	if f.OpenSource && m.OpenSource != schema.OpenSourceStatus {
		return false
	}
	if f.Visual && !m.Visual {
		return false
	}
	if f.LongContext && m.ContextWindow < schema.LongContextThreshold {
		return false
	}
	return true
}

// ApplyFilters returns a fresh slice of the models passing every enabled filter,
// in catalog order.
func ApplyFilters(catalog []schema.ModelRecord, f schema.UserFilters) []schema.ModelRecord {
	out := make([]schema.ModelRecord, 0, len(catalog))
	for _, m := range catalog {
		if MatchesFilters(m, f) {
			out = append(out, m)
		}
	}
	return out
}
