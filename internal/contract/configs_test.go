package contract

import (
	"testing"

	"github.com/huangsam/llmpick/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:       "text",
		Precision:    1,
		Color:        "yes",
		CacheBackend: "sqlite",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{name: "valid minimal config"},
		{
			name: "full selection",
			mutate: func(in *ConfigRawInput) {
				in.Scenario = "Chat"
				in.FilterMode = "strict"
				in.SortMode = "value"
				in.Benchmark = "ttft_ms"
				in.Reasoning = true
			},
		},
		{name: "invalid scenario", mutate: func(in *ConfigRawInput) { in.Scenario = "gaming" }, expectError: "invalid scenario"},
		{name: "invalid filter mode", mutate: func(in *ConfigRawInput) { in.FilterMode = "loose" }, expectError: "invalid filter mode"},
		{name: "invalid sort mode", mutate: func(in *ConfigRawInput) { in.SortMode = "alpha" }, expectError: "invalid sort mode"},
		{name: "invalid benchmark", mutate: func(in *ConfigRawInput) { in.Benchmark = "elo" }, expectError: "invalid benchmark"},
		{name: "invalid precision", mutate: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: "precision must be 1 or 2"},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: "invalid output format"},
		{name: "parquet needs file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: "requires --output-file"},
		{name: "negative limit", mutate: func(in *ConfigRawInput) { in.Limit = -1 }, expectError: "limit must be between"},
		{name: "limit too large", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: "limit must be between"},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -5 }, expectError: "width cannot be negative"},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: "invalid --color"},
		{name: "invalid backend", mutate: func(in *ConfigRawInput) { in.CacheBackend = "redis" }, expectError: "invalid cache backend"},
		{name: "mysql needs connect", mutate: func(in *ConfigRawInput) { in.CacheBackend = "mysql" }, expectError: "cache-db-connect is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.mutate != nil {
				tt.mutate(input)
			}
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidateTransfersFields(t *testing.T) {
	input := validInput()
	input.Catalog = "  models.toml "
	input.Scenario = "documents"
	input.FilterMode = "strict"
	input.Benchmark = "IFEVAL"
	input.LongContext = true
	input.OpenSource = true
	input.Limit = 5
	input.Detail = true
	input.Color = "no"
	input.Output = "JSON"
	input.CacheBackend = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "models.toml", cfg.CatalogPath)
	assert.Equal(t, schema.SelectionState{
		Scenario:   schema.DocumentsScenario,
		FilterMode: schema.StrictFilter,
		SortMode:   schema.BySize,
		Benchmark:  schema.IFEval,
		Filters:    schema.UserFilters{LongContext: true, OpenSource: true},
	}, cfg.Selection)
	assert.Equal(t, 5, cfg.Limit)
	assert.True(t, cfg.Detail)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
}

func TestParseSelectionDefaults(t *testing.T) {
	sel, err := ParseSelection("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, schema.CodingScenario, sel.Scenario)
	assert.Equal(t, schema.HighlightFilter, sel.FilterMode)
	assert.Equal(t, schema.BySize, sel.SortMode)
	assert.Equal(t, schema.NoBenchmark, sel.Benchmark)

	sel, err = ParseSelection("chat", "highlight", "value", "none")
	require.NoError(t, err)
	assert.Equal(t, schema.NoBenchmark, sel.Benchmark)
}

func TestBenchmarkList(t *testing.T) {
	list := BenchmarkList()
	for _, k := range schema.AllBenchmarks {
		assert.Contains(t, list, string(k))
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(localhost:3306)/llmpick", false},
		{"mysql no tcp", schema.MySQLBackend, "root:pw@localhost/llmpick", true},
		{"mysql no db", schema.MySQLBackend, "root:pw@tcp(localhost:3306)", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 dbname=llmpick", false},
		{"postgres no host", schema.PostgreSQLBackend, "port=5432 dbname=llmpick", true},
		{"postgres no db", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCloneWithSelection(t *testing.T) {
	cfg := &Config{Limit: 3, Selection: schema.SelectionState{Scenario: schema.CodingScenario}}
	clone := cfg.CloneWithSelection(schema.SelectionState{Scenario: schema.ChatScenario})

	assert.Equal(t, schema.CodingScenario, cfg.Selection.Scenario)
	assert.Equal(t, schema.ChatScenario, clone.Selection.Scenario)
	assert.Equal(t, 3, clone.Limit)
}

func TestProcessProfilingConfig(t *testing.T) {
	var p ProfileConfig
	require.NoError(t, ProcessProfilingConfig(&p, ""))
	assert.False(t, p.Enabled)

	require.NoError(t, ProcessProfilingConfig(&p, "run"))
	assert.True(t, p.Enabled)
	assert.Equal(t, "run", p.Prefix)
}
