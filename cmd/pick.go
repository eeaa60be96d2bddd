package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/huangsam/llmpick/core"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Filter option keys offered by the pick form.
const (
	moeFilter         = "moe-or-hybrid"
	reasoningFilter   = "reasoning"
	openSourceFilter  = "open-source"
	visualFilter      = "visual"
	longContextFilter = "long-context"
)

// pickAnswers holds the raw values collected by the pick form.
type pickAnswers struct {
	Scenario   string
	FilterMode string
	SortMode   string
	Benchmark  string
	Filters    []string
}

// newPickAnswers seeds the form with the flag and config selection.
func newPickAnswers(sel schema.SelectionState) pickAnswers {
	a := pickAnswers{
		Scenario:   string(sel.Scenario),
		FilterMode: string(sel.FilterMode),
		SortMode:   string(sel.SortMode),
		Benchmark:  string(sel.Benchmark),
	}
	if a.Benchmark == "" {
		a.Benchmark = "none"
	}
	f := sel.Filters
	for key, on := range map[string]bool{
		moeFilter:         f.MoEOrHybrid,
		reasoningFilter:   f.Reasoning,
		openSourceFilter:  f.OpenSource,
		visualFilter:      f.Visual,
		longContextFilter: f.LongContext,
	} {
		if on {
			a.Filters = append(a.Filters, key)
		}
	}
	slices.Sort(a.Filters)
	return a
}

// answersToSelection validates the form answers into a selection.
func answersToSelection(a pickAnswers) (schema.SelectionState, error) {
	sel, err := contract.ParseSelection(a.Scenario, a.FilterMode, a.SortMode, a.Benchmark)
	if err != nil {
		return sel, err
	}
	for _, key := range a.Filters {
		switch key {
		case moeFilter:
			sel.Filters.MoEOrHybrid = true
		case reasoningFilter:
			sel.Filters.Reasoning = true
		case openSourceFilter:
			sel.Filters.OpenSource = true
		case visualFilter:
			sel.Filters.Visual = true
		case longContextFilter:
			sel.Filters.LongContext = true
		default:
			return sel, fmt.Errorf("unknown filter '%s'", key)
		}
	}
	return sel, nil
}

// benchmarkOptions lists "none" followed by every benchmark with its display label.
func benchmarkOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("None", "none")}
	for _, k := range schema.AllBenchmarks {
		opts = append(opts, huh.NewOption(k.Label(), string(k)))
	}
	return opts
}

// newPickForm builds the selection form bound to a.
func newPickForm(a *pickAnswers) *huh.Form {
	scenarioOpts := make([]huh.Option[string], 0, len(schema.AllScenarios))
	for _, s := range schema.AllScenarios {
		scenarioOpts = append(scenarioOpts, huh.NewOption(scenarioLabel(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Scenario").
				Description("What will the model mostly do?").
				Options(scenarioOpts...).
				Value(&a.Scenario),
			huh.NewSelect[string]().
				Title("Filter mode").
				Options(
					huh.NewOption("Highlight (show all, mark matches)", string(schema.HighlightFilter)),
					huh.NewOption("Strict (matches only)", string(schema.StrictFilter)),
				).
				Value(&a.FilterMode),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Benchmark").
				Options(benchmarkOptions()...).
				Value(&a.Benchmark),
			huh.NewSelect[string]().
				Title("Sort mode").
				Description("Applies to highlight mode").
				Options(
					huh.NewOption("By size", string(schema.BySize)),
					huh.NewOption("By benchmark value", string(schema.ByValue)),
				).
				Value(&a.SortMode),
			huh.NewMultiSelect[string]().
				Title("Filters").
				Options(
					huh.NewOption("MoE or hybrid", moeFilter),
					huh.NewOption("Reasoning mode", reasoningFilter),
					huh.NewOption("Open source", openSourceFilter),
					huh.NewOption("Visual input", visualFilter),
					huh.NewOption("Long context (128k+)", longContextFilter),
				).
				Value(&a.Filters),
		),
	)
}

// scenarioLabel returns the form label for a scenario.
func scenarioLabel(s schema.Scenario) string {
	switch s {
	case schema.CodingScenario:
		return "Coding"
	case schema.ChatScenario:
		return "Chat"
	case schema.DocumentsScenario:
		return "Documents"
	default:
		return string(s)
	}
}

// pickCmd prompts for a selection and ranks it.
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively choose a scenario and filters, then rank.",
	Long: `Walk through the ranking options in a form and print the result.

Flags and config values prefill the form. When stdin is not a terminal the
form falls back to accessible line prompts.

Examples:
  llmpick pick
  llmpick pick --detail`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		answers := newPickAnswers(cfg.Selection)
		form := newPickForm(&answers).WithAccessible(!term.IsTerminal(int(os.Stdin.Fd())))
		if err := form.RunWithContext(rootCtx); err != nil {
			contract.LogFatal("Selection canceled", err)
		}

		sel, err := answersToSelection(answers)
		if err != nil {
			contract.LogFatal("Invalid selection", err)
		}
		cfg.Selection = sel

		if err := core.ExecuteRank(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot rank models", err)
		}
	},
}
