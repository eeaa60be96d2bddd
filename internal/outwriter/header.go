package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
)

// LogRankHeader prints a concise, 2-line header for a ranking to stderr.
func LogRankHeader(cfg *contract.Config, source string, total int) {
	writeRankHeader(os.Stderr, cfg.Selection, source, total)
}

func writeRankHeader(w io.Writer, sel schema.SelectionState, source string, total int) {
	// Line 1: The scenario and how it is applied
	_, _ = fmt.Fprintf(w, "🔎 Scenario: %s (Mode: %s, Sort: %s)\n", sel.Scenario, sel.FilterMode, sel.SortMode)

	// Line 2: The catalog and the benchmark on display
	benchmark := "none"
	if sel.Benchmark != schema.NoBenchmark {
		benchmark = sel.Benchmark.Label()
	}
	_, _ = fmt.Fprintf(w, "📚 Catalog: %s (%d models), Benchmark: %s\n", source, total, benchmark)
}
