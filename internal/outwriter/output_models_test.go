package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelsFixture() []schema.ModelRecord {
	models := rankedFixture().Models
	out := make([]schema.ModelRecord, len(models))
	for i, rm := range models {
		out[i] = rm.ModelRecord
	}
	out[0].Reasoning = true
	out[0].OpenSource = schema.OpenSourceStatus
	out[0].Capabilities = schema.Capabilities{Reasoning: schema.ThinkModeLevel, Coding: schema.ExcellentLevel}
	return out
}

func TestWriteModelsTable(t *testing.T) {
	cfg := &contract.Config{Width: 160, Precision: 1}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeModelsTable(modelsFixture(), "embedded", cfg, fmtFloat, &buf))
	text := buf.String()

	assert.Contains(t, text, "📚 Catalog: embedded (2 models)")
	assert.Contains(t, text, "qwen3-235b")
	assert.Contains(t, text, "262,144")
	assert.Contains(t, text, "reasoning,long-context")
	assert.Contains(t, text, "Open Source")
	assert.NotContains(t, text, "ThinkMode", "capability levels only appear with detail")

	cfg.Detail = true
	buf.Reset()
	require.NoError(t, writeModelsTable(modelsFixture(), "embedded", cfg, fmtFloat, &buf))
	assert.Contains(t, buf.String(), "ThinkMode")
	assert.Contains(t, buf.String(), "fp8:240")
}

func TestWriteModelsTableEmpty(t *testing.T) {
	cfg := &contract.Config{Width: 100}
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	require.NoError(t, writeModelsTable(nil, "embedded", cfg, fmtFloat, &buf))
	assert.Contains(t, buf.String(), NoMatchMessage)
}

func TestWriteCSVResultsForModels(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForModels(&buf, modelsFixture(), fmtFloat))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Len(t, header, 13+len(schema.AllPrecisions)+len(schema.AllBenchmarks))
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	first := records[1]
	assert.Equal(t, "88.0", first[index["ifeval"]])
	assert.Equal(t, "", first[index["hle"]], "unmeasured benchmarks are empty")
	assert.Equal(t, "240.0", first[index["memory_fp8"]])
	assert.Equal(t, "", first[index["memory_fp16"]])
	assert.Equal(t, "true", first[index["reasoning"]])
	assert.Equal(t, "ThinkMode", first[index["reasoning_level"]])
}

func TestWriteModelsJSON(t *testing.T) {
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: filepath.Join(t.TempDir(), "models.json")}
	require.NoError(t, WriteModels(modelsFixture(), "embedded", cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var models []schema.ModelRecord
	require.NoError(t, json.Unmarshal(data, &models))
	assert.Equal(t, modelsFixture(), models)
}

func TestWriteModelsParquet(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: filepath.Join(t.TempDir(), "models.parquet")}
	require.NoError(t, WriteModels(modelsFixture(), "embedded", cfg))

	info, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
