package algo

import "github.com/huangsam/llmpick/schema"

// Intensities normalizes the scores of key across models into [0,1].
// Models without a score get no entry. When every defined value is equal they
// all get 1. Lower-is-better keys are inverted so the best value is always 1.
func Intensities(models []schema.ModelRecord, key schema.BenchmarkKey) map[string]float64 {
	out := make(map[string]float64)
	if key == schema.NoBenchmark {
		return out
	}

	first := true
	var lo, hi float64
	for _, m := range models {
		v, ok := m.Score(key)
		if !ok {
			continue
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if first {
		return out
	}

	for _, m := range models {
		v, ok := m.Score(key)
		if !ok {
			continue
		}
		if hi == lo {
			out[m.ID] = 1
			continue
		}
		n := (v - lo) / (hi - lo)
		if key.LowerIsBetter() {
			n = 1 - n
		}
		out[m.ID] = n
	}
	return out
}
