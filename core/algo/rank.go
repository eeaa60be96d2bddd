package algo

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/huangsam/llmpick/schema"
)

// ValidateSelection checks every enumerated field of a selection.
// An empty benchmark means no benchmark is displayed.
func ValidateSelection(sel schema.SelectionState) error {
	if _, ok := schema.ValidScenarios[sel.Scenario]; !ok {
		return fmt.Errorf("%w: unknown scenario '%s'. must be coding, chat, documents", ErrInvalidArgument, sel.Scenario)
	}
	if _, ok := schema.ValidFilterModes[sel.FilterMode]; !ok {
		return fmt.Errorf("%w: unknown filter mode '%s'. must be strict, highlight", ErrInvalidArgument, sel.FilterMode)
	}
	if _, ok := schema.ValidSortModes[sel.SortMode]; !ok {
		return fmt.Errorf("%w: unknown sort mode '%s'. must be size, value", ErrInvalidArgument, sel.SortMode)
	}
	if sel.Benchmark != schema.NoBenchmark {
		if _, ok := schema.ValidBenchmarks[sel.Benchmark]; !ok {
			return fmt.Errorf("%w: unknown benchmark '%s'", ErrInvalidArgument, sel.Benchmark)
		}
	}
	return nil
}

// Rank filters, orders and scores the catalog for a selection. It never
// mutates its inputs and returns fresh slices and maps on every call.
//
// Strict mode drops models failing the scenario predicate and orders the
// rest with the scenario comparator. Highlight mode keeps every candidate,
// tags it active or inactive and orders by size, or by the displayed
// benchmark inside the two size buckets when sorting by value.
func Rank(catalog []schema.ModelRecord, sel schema.SelectionState) (schema.RankedResult, error) {
	if err := ValidateSelection(sel); err != nil {
		return schema.RankedResult{}, err
	}
	rule, err := GetRule(sel.Scenario)
	if err != nil {
		return schema.RankedResult{}, err
	}

	candidates := ApplyFilters(catalog, sel.Filters)
	active := make(map[string]bool, len(candidates))

	var display []schema.ModelRecord
	switch sel.FilterMode {
	case schema.StrictFilter:
		display = make([]schema.ModelRecord, 0, len(candidates))
		for _, m := range candidates {
			if rule.Predicate(m) {
				display = append(display, m)
				active[m.ID] = true
			}
		}
		slices.SortStableFunc(display, rule.Compare)
	default:
		display = candidates
		for _, m := range display {
			active[m.ID] = rule.Predicate(m)
		}
		if sel.SortMode == schema.ByValue && sel.Benchmark != schema.NoBenchmark {
			slices.SortStableFunc(display, byBucketThenValue(sel.Benchmark))
		} else {
			slices.SortStableFunc(display, bySizeDesc)
		}
	}

	return schema.RankedResult{
		Models:    display,
		ActiveIDs: active,
		Intensity: Intensities(display, sel.Benchmark),
	}, nil
}

// Bucket returns the size bucket of a model.
func Bucket(m schema.ModelRecord) schema.SizeBucket {
	return schema.BucketOf(m)
}

func bySizeDesc(a, b schema.ModelRecord) int {
	return cmp.Compare(b.TotalParams, a.TotalParams)
}

// byBucketThenValue puts the large bucket first and orders each bucket by the
// raw benchmark value descending, missing values last.
func byBucketThenValue(key schema.BenchmarkKey) func(a, b schema.ModelRecord) int {
	return func(a, b schema.ModelRecord) int {
		if a.IsLarge() != b.IsLarge() {
			if a.IsLarge() {
				return -1
			}
			return 1
		}
		va, oka := a.Score(key)
		vb, okb := b.Score(key)
		return compareDesc(va, oka, vb, okb)
	}
}
