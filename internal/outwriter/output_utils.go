// Package outwriter renders rankings, catalog listings and scenario rules as text, CSV, JSON or Parquet.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
)

// barWidth is the number of cells in a full intensity bar.
const barWidth = 10

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// formatScore renders a benchmark value, or "-" when it was not measured.
func formatScore(m schema.ModelRecord, key schema.BenchmarkKey, fmtFloat func(float64) string) string {
	v, ok := m.Score(key)
	if !ok {
		return "-"
	}
	return fmtFloat(v)
}

// formatRatedScore renders a benchmark value followed by its rating label.
func formatRatedScore(m schema.ModelRecord, key schema.BenchmarkKey, fmtFloat func(float64) string, useColors bool) string {
	v, ok := m.Score(key)
	if !ok {
		return "-"
	}
	label := contract.GetPlainLabel(v, key.LowerIsBetter())
	if useColors {
		label = contract.GetColorLabel(v, key.LowerIsBetter())
	}
	return fmt.Sprintf("%s %s", fmtFloat(v), label)
}

// formatTokens renders a context window with thousands separators, e.g. "131,072".
func formatTokens(tokens int) string {
	return humanize.Comma(int64(tokens))
}

// formatOptional renders a nullable float, or "" when absent.
func formatOptional(v *float64, fmtFloat func(float64) string) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}

// intensityBar renders a [0,1] intensity as a fixed-width bar of filled and empty cells.
func intensityBar(v *float64) string {
	if v == nil {
		return strings.Repeat("·", barWidth)
	}
	filled := int(*v*barWidth + 0.5)
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// scenarioDisplayName returns the display name with emoji for a scenario.
func scenarioDisplayName(s schema.Scenario) string {
	switch s {
	case schema.CodingScenario:
		return "🧩 CODING"
	case schema.ChatScenario:
		return "💬 CHAT"
	case schema.DocumentsScenario:
		return "📄 DOCUMENTS"
	default:
		return strings.ToUpper(string(s))
	}
}

// benchmarkKeys joins benchmark keys with a separator.
func benchmarkKeys(keys []schema.BenchmarkKey, sep string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, sep)
}
