package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/llmpick/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	DefaultLimit     = 0 // 0 shows the whole display set
	MaxResultLimit   = 1000
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the final, validated runtime configuration.
type Config struct {
	CatalogPath string
	Selection   schema.SelectionState

	Limit      int
	Detail     bool
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Catalog        string `mapstructure:"catalog"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`

	// --- Fields from rankCmd.Flags() ---
	Scenario    string `mapstructure:"scenario"`
	FilterMode  string `mapstructure:"filter-mode"`
	SortMode    string `mapstructure:"sort-mode"`
	Benchmark   string `mapstructure:"benchmark"`
	Limit       int    `mapstructure:"limit"`
	Detail      bool   `mapstructure:"detail"`
	MoEOrHybrid bool   `mapstructure:"moe-or-hybrid"`
	Reasoning   bool   `mapstructure:"reasoning"`
	OpenSource  bool   `mapstructure:"open-source"`
	Visual      bool   `mapstructure:"visual"`
	LongContext bool   `mapstructure:"long-context"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CloneWithSelection creates a copy of the Config with a different selection.
func (c *Config) CloneWithSelection(sel schema.SelectionState) *Config {
	clone := c.Clone()
	clone.Selection = sel
	return clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	sel, err := ParseSelection(input.Scenario, input.FilterMode, input.SortMode, input.Benchmark)
	if err != nil {
		return err
	}
	sel.Filters = schema.UserFilters{
		MoEOrHybrid: input.MoEOrHybrid,
		Reasoning:   input.Reasoning,
		OpenSource:  input.OpenSource,
		Visual:      input.Visual,
		LongContext: input.LongContext,
	}
	cfg.Selection = sel
	return nil
}

// ParseSelection validates user-facing selection strings. Empty values take
// the defaults: coding scenario, highlight mode, size order, no benchmark.
func ParseSelection(scenario, filterMode, sortMode, benchmark string) (schema.SelectionState, error) {
	sel := schema.SelectionState{
		Scenario:   schema.CodingScenario,
		FilterMode: schema.HighlightFilter,
		SortMode:   schema.BySize,
		Benchmark:  schema.NoBenchmark,
	}

	if s := strings.ToLower(strings.TrimSpace(scenario)); s != "" {
		sel.Scenario = schema.Scenario(s)
		if _, ok := schema.ValidScenarios[sel.Scenario]; !ok {
			return sel, fmt.Errorf("invalid scenario '%s'. must be coding, chat, documents", scenario)
		}
	}
	if s := strings.ToLower(strings.TrimSpace(filterMode)); s != "" {
		sel.FilterMode = schema.FilterMode(s)
		if _, ok := schema.ValidFilterModes[sel.FilterMode]; !ok {
			return sel, fmt.Errorf("invalid filter mode '%s'. must be strict, highlight", filterMode)
		}
	}
	if s := strings.ToLower(strings.TrimSpace(sortMode)); s != "" {
		sel.SortMode = schema.SortMode(s)
		if _, ok := schema.ValidSortModes[sel.SortMode]; !ok {
			return sel, fmt.Errorf("invalid sort mode '%s'. must be size, value", sortMode)
		}
	}
	if s := strings.ToLower(strings.TrimSpace(benchmark)); s != "" && s != "none" {
		sel.Benchmark = schema.BenchmarkKey(s)
		if _, ok := schema.ValidBenchmarks[sel.Benchmark]; !ok {
			return sel, fmt.Errorf("invalid benchmark '%s'. must be one of %s", benchmark, BenchmarkList())
		}
	}
	return sel, nil
}

// BenchmarkList returns the benchmark keys as a comma-separated string.
func BenchmarkList() string {
	keys := make([]string, len(schema.AllBenchmarks))
	for i, k := range schema.AllBenchmarks {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseDatabaseBackend lowercases and validates a backend name.
func ParseDatabaseBackend(s string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(s))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseDatabaseBackend(input.CacheBackend)
	if err != nil {
		return err
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// validateSimpleInputs processes and validates all non-selection fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.CatalogPath = strings.TrimSpace(input.Catalog)
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Limit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", cfg.Width)
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
