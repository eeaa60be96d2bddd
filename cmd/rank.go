package cmd

import (
	"github.com/huangsam/llmpick/core"
	"github.com/spf13/cobra"
)

// rankCmd ranks catalog models for a usage scenario.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank models for a usage scenario.",
	Long: `Rank the model catalog for one usage scenario and show the best fit first.

Each scenario has a rule that decides which models match:
- coding: reasoning and coding capability both rated Advanced or better
- chat: MoE architectures, which stay fast under load
- documents: models with at least 128k tokens of context

In highlight mode (default) every model is listed and the matches are marked.
In strict mode only the matches are listed. Models are grouped into large
(>= 40B total params) and small buckets.

Examples:
  # Best coding models, matches marked
  llmpick rank --scenario coding

  # Only long-context models, in the scenario's own order
  llmpick rank -s documents --filter-mode strict

  # All models by IFEval within each size bucket, long-context ones marked
  llmpick rank -s documents -b ifeval --sort-mode value

  # Open source reasoning models with full detail
  llmpick rank --open-source --reasoning --detail

  # Export to Parquet for analytics
  llmpick rank -s chat -b mmlu_pro --output parquet --output-file chat.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(core.ExecuteRank, "Cannot rank models"),
}
