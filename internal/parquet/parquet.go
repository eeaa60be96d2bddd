// Package parquet provides data structures and functions for exporting ranked
// and listed models to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/llmpick/schema"
	"github.com/parquet-go/parquet-go"
)

// ModelRow is one catalog record flattened into columns.
// Unmeasured benchmarks and unknown memory footprints are null.
type ModelRow struct {
	ModelID       string  `parquet:"model_id,snappy"`
	Name          string  `parquet:"name,snappy"`
	Architecture  string  `parquet:"architecture,snappy,dict"`
	TotalParams   float64 `parquet:"total_params,snappy"`
	ActiveParams  float64 `parquet:"active_params,snappy"`
	ContextWindow int64   `parquet:"context_window,snappy"`
	Reasoning     bool    `parquet:"reasoning"`
	Visual        bool    `parquet:"visual"`
	OpenSource    string  `parquet:"open_source,snappy,dict"`
	Speed         float64 `parquet:"speed,snappy"`

	// CostPer100kTokens is the KV cache size in GB per 100k tokens
	CostPer100kTokens float64 `parquet:"cost_per_100k_tokens,snappy"`

	ReasoningLevel string `parquet:"reasoning_level,snappy,dict"`
	CodingLevel    string `parquet:"coding_level,snappy,dict"`

	MemoryFP16 *float64 `parquet:"memory_fp16,optional,snappy"`
	MemoryFP8  *float64 `parquet:"memory_fp8,optional,snappy"`
	MemorySFP8 *float64 `parquet:"memory_sfp8,optional,snappy"`
	MemoryINT4 *float64 `parquet:"memory_int4,optional,snappy"`

	AALCR                  *float64 `parquet:"aa_lcr,optional,snappy"`
	AAOmniscienceAccuracy  *float64 `parquet:"aa_omniscience_accuracy,optional,snappy"`
	AAOmniscienceNonHalluc *float64 `parquet:"aa_omniscience_non_hallucination,optional,snappy"`
	HLE                    *float64 `parquet:"hle,optional,snappy"`
	GPQADiamond            *float64 `parquet:"gpqa_diamond,optional,snappy"`
	IFBench                *float64 `parquet:"ifbench,optional,snappy"`
	MMMUPro                *float64 `parquet:"mmmu_pro,optional,snappy"`
	LiveCodeBench          *float64 `parquet:"live_code_bench,optional,snappy"`
	Math500                *float64 `parquet:"math_500,optional,snappy"`
	TTFTMs                 *float64 `parquet:"ttft_ms,optional,snappy"`
	LaPerf                 *float64 `parquet:"la_perf,optional,snappy"`
	IFEval                 *float64 `parquet:"ifeval,optional,snappy"`
	MMLUPro                *float64 `parquet:"mmlu_pro,optional,snappy"`
}

// RankedRow is one displayed model of a ranking together with the selection that produced it.
type RankedRow struct {
	// GeneratedAt is when the ranking was exported (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	Rank       int32  `parquet:"rank,snappy"`
	Scenario   string `parquet:"scenario,snappy,dict"`
	FilterMode string `parquet:"filter_mode,snappy,dict"`
	SortMode   string `parquet:"sort_mode,snappy,dict"`

	// Benchmark is the displayed benchmark key (nullable when none is selected)
	Benchmark *string `parquet:"benchmark,optional,snappy"`

	Bucket  string `parquet:"bucket,snappy,dict"`
	Active  bool   `parquet:"active"`
	TopPick bool   `parquet:"top_pick"`

	// Intensity is the normalized 0-100 strength of the displayed benchmark (nullable)
	Intensity *float64 `parquet:"intensity,optional,snappy"`

	ModelRow
}

// floatPtr returns a pointer to v when ok, otherwise nil.
func floatPtr(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// NewModelRow flattens a catalog record into a ModelRow.
func NewModelRow(m schema.ModelRecord) ModelRow {
	score := func(k schema.BenchmarkKey) *float64 { return floatPtr(m.Score(k)) }
	memory := func(p schema.Precision) *float64 { return floatPtr(m.Memory(p)) }
	return ModelRow{
		ModelID:                m.ID,
		Name:                   m.Name,
		Architecture:           string(m.Architecture),
		TotalParams:            m.TotalParams,
		ActiveParams:           m.ActiveParams,
		ContextWindow:          int64(m.ContextWindow),
		Reasoning:              m.Reasoning,
		Visual:                 m.Visual,
		OpenSource:             string(m.OpenSource),
		Speed:                  m.Speed,
		CostPer100kTokens:      m.CostPer100kTokens,
		ReasoningLevel:         string(m.Capabilities.Reasoning),
		CodingLevel:            string(m.Capabilities.Coding),
		MemoryFP16:             memory(schema.FP16),
		MemoryFP8:              memory(schema.FP8),
		MemorySFP8:             memory(schema.SFP8),
		MemoryINT4:             memory(schema.INT4),
		AALCR:                  score(schema.AALCR),
		AAOmniscienceAccuracy:  score(schema.AAOmniscienceAccuracy),
		AAOmniscienceNonHalluc: score(schema.AAOmniscienceNonHalluc),
		HLE:                    score(schema.HLE),
		GPQADiamond:            score(schema.GPQADiamond),
		IFBench:                score(schema.IFBench),
		MMMUPro:                score(schema.MMMUPro),
		LiveCodeBench:          score(schema.LiveCodeBench),
		Math500:                score(schema.Math500),
		TTFTMs:                 score(schema.TTFTMs),
		LaPerf:                 score(schema.LaPerf),
		IFEval:                 score(schema.IFEval),
		MMLUPro:                score(schema.MMLUPro),
	}
}

// NewRankedRows flattens a ranking into RankedRow values stamped with generatedAt.
func NewRankedRows(output schema.RankedOutput, generatedAt time.Time) []RankedRow {
	var benchmark *string
	if output.Selection.Benchmark != schema.NoBenchmark {
		b := string(output.Selection.Benchmark)
		benchmark = &b
	}

	rows := make([]RankedRow, len(output.Models))
	for i, rm := range output.Models {
		rows[i] = RankedRow{
			GeneratedAt: generatedAt,
			Rank:        int32(rm.Rank),
			Scenario:    string(output.Selection.Scenario),
			FilterMode:  string(output.Selection.FilterMode),
			SortMode:    string(output.Selection.SortMode),
			Benchmark:   benchmark,
			Bucket:      string(rm.Bucket),
			Active:      rm.Active,
			TopPick:     rm.TopPick,
			Intensity:   rm.Intensity,
			ModelRow:    NewModelRow(rm.ModelRecord),
		}
	}
	return rows
}

// WriteRankedParquet writes a slice of RankedRow structs to a Parquet file.
func WriteRankedParquet(data []RankedRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteModelsParquet writes a slice of ModelRow structs to a Parquet file.
func WriteModelsParquet(data []ModelRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates outputPath and writes every row with a schema inferred from T's struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the footer; a failure here leaves an unreadable file
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
