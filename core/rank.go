package core

import (
	"github.com/huangsam/llmpick/core/algo"
	"github.com/huangsam/llmpick/schema"
)

// limitModels returns the first 'limit' ranked models. A limit of zero or
// one larger than the number of models returns all of them.
func limitModels(models []schema.RankedModel, limit int) []schema.RankedModel {
	if limit > 0 && len(models) > limit {
		return models[:limit]
	}
	return models
}

// BuildRankedOutput attaches the scenario description and presentation data
// to a ranking. Rank and top pick are decided before the limit is applied.
func BuildRankedOutput(result schema.RankedResult, sel schema.SelectionState, limit int) (schema.RankedOutput, error) {
	rule, err := algo.GetRule(sel.Scenario)
	if err != nil {
		return schema.RankedOutput{}, err
	}
	return schema.RankedOutput{
		Selection: sel,
		Title:     rule.Title,
		Criteria:  rule.Criteria,
		Models:    limitModels(schema.EnrichRanked(result), limit),
	}, nil
}
