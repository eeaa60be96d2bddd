package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/llmpick/core/algo"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/internal/parquet"
	"github.com/huangsam/llmpick/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// NoMatchMessage is printed instead of an empty table.
const NoMatchMessage = "No models match the criteria."

// Row status values.
const (
	topPickStatus  = "Top Pick"
	matchStatus    = "Match"
	inactiveStatus = "-"
)

// WriteRanked outputs a ranking, dispatching based on the output format configured.
func WriteRanked(output schema.RankedOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, output)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForRank(csvWriter, output, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.NewRankedRows(output, time.Now())
		if err := parquet.WriteRankedParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(output, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// rankStatus returns the status column value of a ranked model.
func rankStatus(rm schema.RankedModel) string {
	switch {
	case rm.TopPick:
		return topPickStatus
	case rm.Active:
		return matchStatus
	default:
		return inactiveStatus
	}
}

// styleRow colors a finished row: the top pick is highlighted and inactive rows are dimmed.
func styleRow(row []string, rm schema.RankedModel, useColors bool) []string {
	if !useColors {
		return row
	}
	switch {
	case rm.TopPick:
		row[1] = contract.TopPickColor.Sprint(row[1])
		row[4] = contract.TopPickColor.Sprint(row[4])
	case !rm.Active:
		for i := range row {
			row[i] = contract.InactiveColor.Sprint(row[i])
		}
	}
	return row
}

// writeRankTable generates and writes the human-readable table.
func writeRankTable(output schema.RankedOutput, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	sel := output.Selection
	if _, err := fmt.Fprintf(writer, "%s: %s (%s)\n", scenarioDisplayName(sel.Scenario), output.Title, output.Criteria); err != nil {
		return err
	}

	if len(output.Models) == 0 {
		_, err := fmt.Fprintln(writer, NoMatchMessage)
		return err
	}

	if top, ok := topPick(output.Models); ok {
		name := top.Name
		if cfg.UseColors {
			name = contract.TopPickColor.Sprint(name)
		}
		if _, err := fmt.Fprintf(writer, "⭐ %s: %s\n", topPickStatus, name); err != nil {
			return err
		}
	}

	var relevant []schema.BenchmarkKey
	if cfg.Detail {
		if rule, err := algo.GetRule(sel.Scenario); err == nil {
			relevant = rule.RelevantBenchmarks
		}
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Model", "Params", "Size", "Status"}
	if sel.Benchmark != schema.NoBenchmark {
		headers = append(headers, sel.Benchmark.Label(), "Intensity")
	}
	if cfg.Detail {
		for _, k := range relevant {
			headers = append(headers, k.Label())
		}
		headers = append(headers, "Context", "Memory (GB)", "KV/100k (GB)")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	active := 0
	for _, rm := range output.Models {
		if rm.Active {
			active++
		}
		row := []string{
			fmt.Sprintf(intFmt, rm.Rank),                             // Rank
			contract.TruncateName(rm.Name, nameWidth),                // Model
			schema.FormatParamsPair(rm.TotalParams, rm.ActiveParams), // Params
			string(rm.Bucket),                                        // Size
			rankStatus(rm),                                           // Status
		}
		if sel.Benchmark != schema.NoBenchmark {
			row = append(row,
				formatRatedScore(rm.ModelRecord, sel.Benchmark, fmtFloat, cfg.UseColors && rm.Active),
				intensityBar(rm.Intensity),
			)
		}
		if cfg.Detail {
			for _, k := range relevant {
				row = append(row, formatScore(rm.ModelRecord, k, fmtFloat))
			}
			row = append(row,
				schema.FormatContext(rm.ContextWindow), // Context
				schema.FormatMemory(rm.ModelRecord),    // Memory
				fmtFloat(rm.CostPer100kTokens),         // KV cache cost
			)
		}
		data = append(data, styleRow(row, rm, cfg.UseColors))
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d models (%d match %s)\n", len(output.Models), active, sel.Scenario); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranked in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// topPick returns the model flagged as top pick.
func topPick(models []schema.RankedModel) (schema.RankedModel, bool) {
	for _, rm := range models {
		if rm.TopPick {
			return rm, true
		}
	}
	return schema.RankedModel{}, false
}

// writeCSVResultsForRank writes a ranking in CSV format.
func writeCSVResultsForRank(w *csv.Writer, output schema.RankedOutput, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"model_id",
		"name",
		"architecture",
		"total_params",
		"active_params",
		"context_window",
		"bucket",
		"active",
		"top_pick",
		"benchmark",
		"value",
		"label",
		"intensity",
		"scenario",
		"filter_mode",
		"sort_mode",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	sel := output.Selection
	for _, rm := range output.Models {
		value, label := "", ""
		if sel.Benchmark != schema.NoBenchmark {
			if v, ok := rm.Score(sel.Benchmark); ok {
				value = fmtFloat(v)
				label = contract.GetPlainLabel(v, sel.Benchmark.LowerIsBetter())
			}
		}
		rec := []string{
			strconv.Itoa(rm.Rank),                  // Rank
			rm.ID,                                  // Model ID
			rm.Name,                                // Name
			string(rm.Architecture),                // Architecture
			fmtFloat(rm.TotalParams),               // Total params (B)
			fmtFloat(rm.ActiveParams),              // Active params (B)
			strconv.Itoa(rm.ContextWindow),         // Context window (tokens)
			string(rm.Bucket),                      // Size bucket
			strconv.FormatBool(rm.Active),          // Scenario match
			strconv.FormatBool(rm.TopPick),         // Top pick
			string(sel.Benchmark),                  // Benchmark key
			value,                                  // Benchmark value
			label,                                  // Rating
			formatOptional(rm.Intensity, fmtFloat), // Intensity
			string(sel.Scenario),                   // Scenario
			string(sel.FilterMode),                 // Filter mode
			string(sel.SortMode),                   // Sort mode
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
