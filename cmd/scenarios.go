package cmd

import (
	"github.com/huangsam/llmpick/core"
	"github.com/spf13/cobra"
)

// scenariosCmd shows the scenario rules.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Show how each usage scenario matches and orders models.",
	Long: `Display the rule behind every scenario: the criteria a model must meet,
the ordering used within a size bucket and the benchmarks most relevant to it.

Examples:
  llmpick scenarios
  llmpick scenarios --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(core.ExecuteScenarios, "Cannot show scenarios"),
}
