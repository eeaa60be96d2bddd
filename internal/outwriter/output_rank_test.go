package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() schema.RankedOutput {
	full := 1.0
	zero := 0.0
	return schema.RankedOutput{
		Selection: schema.SelectionState{
			Scenario:   schema.DocumentsScenario,
			FilterMode: schema.HighlightFilter,
			SortMode:   schema.ByValue,
			Benchmark:  schema.IFEval,
		},
		Title:    "Document Analysis",
		Criteria: "context_window >= 128000 tokens",
		Models: []schema.RankedModel{
			{
				Rank: 1, Bucket: schema.LargeBucket, Active: true, TopPick: true, Intensity: &full,
				ModelRecord: schema.ModelRecord{
					ID: "qwen3-235b", Name: "Qwen3 235B-A22B", Architecture: schema.MoEArch,
					TotalParams: 235, ActiveParams: 22, ContextWindow: 262144,
					MemoryFootprint:   map[schema.Precision]float64{schema.FP8: 240},
					CostPer100kTokens: 9.4,
					BenchmarkScores:   map[schema.BenchmarkKey]float64{
						schema.IFEval: 88, schema.MMLUPro: 83,
					},
				},
			},
			{
				Rank: 2, Bucket: schema.SmallBucket, Active: false, Intensity: &zero,
				ModelRecord: schema.ModelRecord{
					ID: "phi-4-mini", Name: "Phi-4 Mini", Architecture: schema.DenseArch,
					TotalParams: 3.8, ActiveParams: 3.8, ContextWindow: 32768,
					BenchmarkScores: map[schema.BenchmarkKey]float64{schema.IFEval: 61},
				},
			},
		},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		Selection:    rankedFixture().Selection,
		Precision:    1,
		Output:       schema.TextOut,
		Width:        160,
		CacheBackend: schema.SQLiteBackend,
	}
}

func TestWriteRankTable(t *testing.T) {
	output := rankedFixture()
	cfg := textConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeRankTable(output, cfg, fmtFloat, intFmt, time.Millisecond, &buf))
	text := buf.String()

	assert.Contains(t, text, "📄 DOCUMENTS: Document Analysis")
	assert.Contains(t, text, "⭐ Top Pick: Qwen3 235B-A22B")
	assert.Contains(t, strings.ToUpper(text), "IFEVAL")
	assert.Contains(t, text, "88.0 Strong")
	assert.Contains(t, text, "61.0 Fair")
	assert.Contains(t, text, strings.Repeat("█", barWidth))
	assert.Contains(t, text, "235B (22B active)")
	assert.Contains(t, text, "Showing 2 models (1 match documents)")
	assert.Contains(t, text, "Cache backend: sqlite")
	assert.NotContains(t, text, "83.0", "relevant benchmarks only appear with detail")

	// Rows keep display order
	assert.Less(t, strings.Index(text, "Qwen3"), strings.Index(text, "Phi-4"))
}

func TestWriteRankTableDetail(t *testing.T) {
	cfg := textConfig()
	cfg.Detail = true
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeRankTable(rankedFixture(), cfg, fmtFloat, intFmt, time.Millisecond, &buf))
	text := buf.String()

	assert.Contains(t, text, "83.0")
	assert.Contains(t, text, "fp8:240")
	assert.Contains(t, text, "262k")
	assert.Contains(t, text, "9.4")
}

func TestWriteRankTableNoBenchmark(t *testing.T) {
	output := rankedFixture()
	output.Selection.Benchmark = schema.NoBenchmark
	cfg := textConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeRankTable(output, cfg, fmtFloat, intFmt, 0, &buf))
	assert.NotContains(t, strings.ToUpper(buf.String()), "INTENSITY")
}

func TestWriteRankTableNoMatch(t *testing.T) {
	output := rankedFixture()
	output.Models = nil
	cfg := textConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeRankTable(output, cfg, fmtFloat, intFmt, 0, &buf))
	assert.Contains(t, buf.String(), NoMatchMessage)
	assert.NotContains(t, buf.String(), "Showing")
}

func TestRankStatus(t *testing.T) {
	assert.Equal(t, topPickStatus, rankStatus(schema.RankedModel{Active: true, TopPick: true}))
	assert.Equal(t, matchStatus, rankStatus(schema.RankedModel{Active: true}))
	assert.Equal(t, inactiveStatus, rankStatus(schema.RankedModel{}))
}

func TestStyleRowWithoutColors(t *testing.T) {
	row := []string{"2", "Phi-4 Mini", "3.8B", "small", "-"}
	styled := styleRow(append([]string(nil), row...), schema.RankedModel{}, false)
	assert.Equal(t, row, styled)
}

func TestWriteCSVResultsForRank(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVResultsForRank(w, rankedFixture(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	header := records[0]
	assert.Equal(t, "rank", header[0])
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %s", name)
		return -1
	}

	first := records[1]
	assert.Equal(t, "qwen3-235b", first[col("model_id")])
	assert.Equal(t, "true", first[col("top_pick")])
	assert.Equal(t, "ifeval", first[col("benchmark")])
	assert.Equal(t, "88.00", first[col("value")])
	assert.Equal(t, contract.StrongValue, first[col("label")])
	assert.Equal(t, "1.00", first[col("intensity")])
	assert.Equal(t, "262144", first[col("context_window")])

	second := records[2]
	assert.Equal(t, "false", second[col("active")])
	assert.Equal(t, "small", second[col("bucket")])
}

func TestWriteRankedJSON(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranked.json")

	require.NoError(t, WriteRanked(rankedFixture(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "Document Analysis", result["title"])

	models, ok := result["models"].([]any)
	require.True(t, ok)
	require.Len(t, models, 2)
	first := models[0].(map[string]any)
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, true, first["top_pick"])
	assert.Equal(t, "qwen3-235b", first["id"])
}

func TestWriteRankedParquet(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranked.parquet")

	require.NoError(t, WriteRanked(rankedFixture(), cfg, time.Millisecond))

	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteRankedTextToFile(t *testing.T) {
	cfg := textConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "ranked.txt")

	require.NoError(t, WriteRanked(rankedFixture(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Top Pick")
}

func TestWriteRankHeader(t *testing.T) {
	var buf bytes.Buffer
	writeRankHeader(&buf, rankedFixture().Selection, "embedded", 31)
	assert.Contains(t, buf.String(), "🔎 Scenario: documents (Mode: highlight, Sort: value)")
	assert.Contains(t, buf.String(), "📚 Catalog: embedded (31 models), Benchmark: IFEval")

	buf.Reset()
	writeRankHeader(&buf, schema.SelectionState{Scenario: schema.ChatScenario}, "embedded", 31)
	assert.Contains(t, buf.String(), "Benchmark: none")
}
