package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
)

// ErrParquetUnsupported is returned for listings that have no tabular Parquet form.
var ErrParquetUnsupported = errors.New("parquet output is not supported for this command")

// WriteScenarios displays the definitions of all scenario rules.
// This is a static display that does not require the catalog.
func WriteScenarios(infos []schema.ScenarioInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, infos)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			writer := csv.NewWriter(w)
			defer writer.Flush()
			return writeCSVScenarios(writer, infos)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return ErrParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScenariosText(w, infos)
		}, "Wrote text")
	}
}

// writeScenariosText displays scenarios in human-readable text format.
func writeScenariosText(w io.Writer, infos []schema.ScenarioInfo) error {
	if _, err := fmt.Fprintf(w, "🎯 llmpick Scenarios\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "====================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "strict keeps only matching models; highlight keeps all and marks the matches\n\n"); err != nil {
		return err
	}

	for _, info := range infos {
		if _, err := fmt.Fprintf(w, "%s: %s\n", scenarioDisplayName(info.Scenario), info.Title); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Criteria: %s\n", info.Criteria); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Ordering: %s\n", info.Ordering); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Benchmarks: %s\n\n", benchmarkKeys(info.RelevantBenchmarks, ", ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "📏 Size Buckets\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "large >= %s total params, small below; --sort-mode value ranks large first\n", schema.FormatParams(schema.LargeModelThreshold)); err != nil {
		return err
	}
	return nil
}

// writeCSVScenarios writes the scenario definitions in CSV format.
func writeCSVScenarios(w *csv.Writer, infos []schema.ScenarioInfo) error {
	header := []string{"scenario", "title", "criteria", "ordering", "relevant_benchmarks"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, info := range infos {
		record := []string{
			string(info.Scenario),
			info.Title,
			info.Criteria,
			info.Ordering,
			benchmarkKeys(info.RelevantBenchmarks, "|"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}
