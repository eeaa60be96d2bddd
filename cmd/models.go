package cmd

import (
	"github.com/huangsam/llmpick/core"
	"github.com/spf13/cobra"
)

// modelsCmd lists the model catalog.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models in the catalog.",
	Long: `List every catalog record with its architecture, parameters, context window,
license and traits. Use --detail for capability levels, speed and memory.

Examples:
  # Show the embedded catalog
  llmpick models

  # Only models that accept images
  llmpick models --visual

  # Inspect a custom catalog as JSON
  llmpick models --catalog ./my-models.yaml --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(core.ExecuteModels, "Cannot list models"),
}
