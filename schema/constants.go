package schema

// Custom string types for type safety.
type (
	// Architecture represents the model architecture family.
	Architecture string

	// LicenseStatus represents how openly a model is distributed.
	LicenseStatus string

	// Precision represents a quantization mode used for memory footprints.
	Precision string

	// CapabilityLevel represents an ordinal capability rating.
	CapabilityLevel string

	// BenchmarkKey represents a benchmark measured in the catalog.
	BenchmarkKey string

	// Scenario represents a named usage intent.
	Scenario string

	// FilterMode represents how a scenario predicate is applied.
	FilterMode string

	// SortMode represents the catalog-wide ordering used in highlight mode.
	SortMode string

	// SizeBucket groups models by total parameter count.
	SizeBucket string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All architectures supported.
const (
	DenseArch        Architecture = "Dense"
	MoEArch          Architecture = "MoE"
	HybridLinearArch Architecture = "Hybrid Linear"
	HybridMoEArch    Architecture = "Hybrid MoE"
)

// All license statuses supported.
const (
	OpenSourceStatus  LicenseStatus = "Open Source"
	OpenWeightsStatus LicenseStatus = "Open Weights"
	ProprietaryStatus LicenseStatus = "Proprietary"
)

// All precision modes supported.
const (
	FP16 Precision = "fp16"
	FP8  Precision = "fp8"
	INT4 Precision = "int4"
	SFP8 Precision = "sfp8"
)

// Capability levels in ascending order.
const (
	BasicLevel     CapabilityLevel = "Basic"
	GoodLevel      CapabilityLevel = "Good"
	AdvancedLevel  CapabilityLevel = "Advanced"
	ExcellentLevel CapabilityLevel = "Excellent"
	ThinkModeLevel CapabilityLevel = "ThinkMode"
)

// Benchmark keys known to the catalog.
const (
	AALCR                  BenchmarkKey = "aa_lcr"
	AAOmniscienceAccuracy  BenchmarkKey = "aa_omniscience_accuracy"
	AAOmniscienceNonHalluc BenchmarkKey = "aa_omniscience_non_hallucination"
	HLE                    BenchmarkKey = "hle"
	GPQADiamond            BenchmarkKey = "gpqa_diamond"
	IFBench                BenchmarkKey = "ifbench"
	MMMUPro                BenchmarkKey = "mmmu_pro"
	LiveCodeBench          BenchmarkKey = "live_code_bench"
	Math500                BenchmarkKey = "math_500"
	TTFTMs                 BenchmarkKey = "ttft_ms"
	LaPerf                 BenchmarkKey = "la_perf"
	IFEval                 BenchmarkKey = "ifeval"
	MMLUPro                BenchmarkKey = "mmlu_pro"
	NoBenchmark            BenchmarkKey = ""
)

// All scenarios supported.
const (
	CodingScenario    Scenario = "coding" // default
	ChatScenario      Scenario = "chat"
	DocumentsScenario Scenario = "documents"
)

// All filter modes supported.
const (
	StrictFilter    FilterMode = "strict"
	HighlightFilter FilterMode = "highlight" // default
)

// All sort modes supported.
const (
	BySize  SortMode = "size" // default
	ByValue SortMode = "value"
)

// Size buckets, large first.
const (
	LargeBucket SizeBucket = "large"
	SmallBucket SizeBucket = "small"
)

// LargeModelThreshold is the total parameter count (billions) at which a
// model falls into the large bucket.
const LargeModelThreshold = 40.0

// LongContextThreshold is the context window (tokens) counted as long context.
const LongContextThreshold = 128_000

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllScenarios lists the scenarios in display order.
var AllScenarios = []Scenario{CodingScenario, ChatScenario, DocumentsScenario}

// AllBenchmarks lists the benchmark keys in display order.
var AllBenchmarks = []BenchmarkKey{
	AALCR, AAOmniscienceAccuracy, AAOmniscienceNonHalluc, HLE, GPQADiamond, IFBench, MMMUPro,
	LiveCodeBench, Math500, TTFTMs, LaPerf, IFEval, MMLUPro,
}

// AllPrecisions lists the precision modes from widest to narrowest.
var AllPrecisions = []Precision{FP16, FP8, SFP8, INT4}

// ValidArchitectures lists all valid architectures.
var ValidArchitectures = map[Architecture]struct{}{
	DenseArch:        {},
	MoEArch:          {},
	HybridLinearArch: {},
	HybridMoEArch:    {},
}

// ValidLicenseStatuses lists all valid license statuses.
var ValidLicenseStatuses = map[LicenseStatus]struct{}{
	OpenSourceStatus:  {},
	OpenWeightsStatus: {},
	ProprietaryStatus: {},
}

// ValidPrecisions lists all valid precision modes.
var ValidPrecisions = map[Precision]struct{}{
	FP16: {},
	FP8:  {},
	INT4: {},
	SFP8: {},
}

// ValidBenchmarks lists all valid benchmark keys.
var ValidBenchmarks = map[BenchmarkKey]struct{}{
	AALCR:                  {},
	AAOmniscienceAccuracy:  {},
	AAOmniscienceNonHalluc: {},
	HLE:                    {},
	GPQADiamond:            {},
	IFBench:                {},
	MMMUPro:                {},
	LiveCodeBench:          {},
	Math500:                {},
	TTFTMs:                 {},
	LaPerf:                 {},
	IFEval:                 {},
	MMLUPro:                {},
}

// ValidScenarios lists all valid scenarios.
var ValidScenarios = map[Scenario]struct{}{
	CodingScenario:    {},
	ChatScenario:      {},
	DocumentsScenario: {},
}

// ValidFilterModes lists all valid filter modes.
var ValidFilterModes = map[FilterMode]struct{}{
	StrictFilter:    {},
	HighlightFilter: {},
}

// ValidSortModes lists all valid sort modes.
var ValidSortModes = map[SortMode]struct{}{
	BySize:  {},
	ByValue: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// benchmarkLabels holds display labels for benchmark keys.
var benchmarkLabels = map[BenchmarkKey]string{
	AALCR:                  "AA-LCR",
	AAOmniscienceAccuracy:  "Omniscience Accuracy",
	AAOmniscienceNonHalluc: "Omniscience Non-Hallucination",
	HLE:                    "Humanity's Last Exam",
	GPQADiamond:            "GPQA Diamond",
	IFBench:                "IFBench",
	MMMUPro:                "MMMU-Pro",
	LiveCodeBench:          "LiveCodeBench",
	Math500:                "Math 500",
	TTFTMs:                 "TTFT (ms)",
	LaPerf:                 "La Perf",
	IFEval:                 "IFEval",
	MMLUPro:                "MMLU-Pro",
}

// Label returns the display label of a benchmark key.
func (k BenchmarkKey) Label() string {
	if label, ok := benchmarkLabels[k]; ok {
		return label
	}
	return string(k)
}

// LowerIsBetter reports whether smaller values of the benchmark are better.
func (k BenchmarkKey) LowerIsBetter() bool {
	return k == TTFTMs
}
