// Package cmd defines the command-line interface for llmpick.
package cmd

import (
	"github.com/huangsam/llmpick/core"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)
	cacheCmd.AddCommand(cachePruneCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML or TOML model catalog (default: embedded catalog)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print scenario benchmarks, context, memory and KV cache columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Selection flags are shared by rank and pick; pick uses them as prompt defaults
	for _, c := range []*cobra.Command{rankCmd, pickCmd} {
		addSelectionFlags(c.Flags())
	}

	// Filters also apply to the catalog listing
	addFilterFlags(modelsCmd.Flags())

	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}

	cachePruneCmd.Flags().Duration("max-age", maxPruneAge, "Remove cached rankings older than this duration")
	if err := viper.BindPFlags(cachePruneCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache prune flags", err)
	}
}

// addSelectionFlags registers the scenario selection flags.
func addSelectionFlags(flags *pflag.FlagSet) {
	flags.StringP("scenario", "s", string(schema.CodingScenario), "Usage scenario: coding or chat or documents")
	flags.String("filter-mode", string(schema.HighlightFilter), "Filter mode: strict (matches only) or highlight (all, matches marked)")
	flags.String("sort-mode", string(schema.BySize), "Highlight ordering: size or value")
	flags.StringP("benchmark", "b", "none", "Benchmark to display and normalize: none or "+contract.BenchmarkList())
	flags.IntP("limit", "l", contract.DefaultLimit, "Number of results to display (0 = all)")
	addFilterFlags(flags)
}

// addFilterFlags registers the user filter flags.
func addFilterFlags(flags *pflag.FlagSet) {
	flags.Bool("moe-or-hybrid", false, "Only keep MoE and hybrid architectures")
	flags.Bool("reasoning", false, "Only keep models with a reasoning mode")
	flags.Bool("open-source", false, "Only keep fully open source models")
	flags.Bool("visual", false, "Only keep models that accept image input")
	flags.Bool("long-context", false, "Only keep models with at least 128k tokens of context")
}

// bindCommandFlags binds the flags of the running command to Viper.
// Subcommands share flag names, so binding happens right before setup
// to make the active command's values win.
func bindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// runExecutor adapts a core executor to a Cobra Run function using the shared config.
func runExecutor(execute core.ExecutorFunc, failMsg string) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := execute(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal(failMsg, err)
		}
	}
}
