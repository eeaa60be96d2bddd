package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/internal/parquet"
	"github.com/huangsam/llmpick/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteModels outputs catalog records, dispatching based on the output format configured.
func WriteModels(models []schema.ModelRecord, source string, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, models)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForModels(w, models, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := make([]parquet.ModelRow, len(models))
		for i, m := range models {
			rows[i] = parquet.NewModelRow(m)
		}
		if err := parquet.WriteModelsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelsTable(models, source, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeModelsTable generates and writes the human-readable catalog table.
func writeModelsTable(models []schema.ModelRecord, source string, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "📚 Catalog: %s (%d models)\n", source, len(models)); err != nil {
		return err
	}
	if len(models) == 0 {
		_, err := fmt.Fprintln(writer, NoMatchMessage)
		return err
	}

	table := tablewriter.NewWriter(writer)

	headers := []string{"ID", "Model", "Arch", "Params", "Context", "License", "Traits"}
	if cfg.Detail {
		headers = append(headers, "Reasoning", "Coding", "Speed (tok/s)", "Memory (GB)", "KV/100k (GB)")
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, m := range models {
		row := []string{
			m.ID,
			contract.TruncateName(m.Name, nameWidth),
			string(m.Architecture),
			schema.FormatParamsPair(m.TotalParams, m.ActiveParams),
			formatTokens(m.ContextWindow),
			string(m.OpenSource),
			schema.FormatFlags(m),
		}
		if cfg.Detail {
			row = append(row,
				string(m.Capabilities.Reasoning),
				string(m.Capabilities.Coding),
				fmtFloat(m.Speed),
				schema.FormatMemory(m),
				fmtFloat(m.CostPer100kTokens),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForModels writes catalog records in CSV format with one column per benchmark.
func writeCSVResultsForModels(w io.Writer, models []schema.ModelRecord, fmtFloat func(float64) string) error {
	header := []string{
		"model_id", "name", "architecture", "total_params", "active_params", "context_window",
		"reasoning", "visual", "open_source", "speed", "cost_per_100k_tokens",
		"reasoning_level", "coding_level",
	}
	for _, p := range schema.AllPrecisions {
		header = append(header, "memory_"+string(p))
	}
	for _, k := range schema.AllBenchmarks {
		header = append(header, string(k))
	}

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, m := range models {
			rec := []string{
				m.ID,
				m.Name,
				string(m.Architecture),
				fmtFloat(m.TotalParams),
				fmtFloat(m.ActiveParams),
				strconv.Itoa(m.ContextWindow),
				strconv.FormatBool(m.Reasoning),
				strconv.FormatBool(m.Visual),
				string(m.OpenSource),
				fmtFloat(m.Speed),
				fmtFloat(m.CostPer100kTokens),
				string(m.Capabilities.Reasoning),
				string(m.Capabilities.Coding),
			}
			for _, p := range schema.AllPrecisions {
				gb, ok := m.Memory(p)
				rec = append(rec, formatOptional(optional(gb, ok), fmtFloat))
			}
			for _, k := range schema.AllBenchmarks {
				v, ok := m.Score(k)
				rec = append(rec, formatOptional(optional(v, ok), fmtFloat))
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// optional returns a pointer to v when ok, otherwise nil.
func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
