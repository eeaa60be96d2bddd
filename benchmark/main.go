// Package main provides a performance benchmarking tool for the llmpick CLI.
// It measures execution times across scenarios, selections and catalogs,
// running each test multiple times, treating the first successful cached run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - llmpick binary installed and available in PATH
//
// Usage: go run benchmark/main.go [catalog-file...]
//
//	catalog-file: Optional extra YAML or TOML catalogs; the embedded catalog is always measured
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Catalog     string
	Case        string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkCase is one llmpick invocation to time.
type BenchmarkCase struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Catalogs    []string // Empty string means the embedded catalog
	Cases       []BenchmarkCase
}

func main() {
	config := BenchmarkConfig{
		Timeout:     30 * time.Second,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Catalogs:    append([]string{""}, os.Args[1:]...),
		Cases: []BenchmarkCase{
			{"coding-highlight", []string{"rank", "--scenario", "coding"}},
			{"chat-strict-value", []string{"rank", "--scenario", "chat", "--filter-mode", "strict", "--benchmark", "mmlu_pro", "--sort-mode", "value"}},
			{"documents-detail", []string{"rank", "--scenario", "documents", "--benchmark", "ifeval", "--detail"}},
			{"coding-filtered", []string{"rank", "--scenario", "coding", "--reasoning", "--open-source", "--benchmark", "live_code_bench"}},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using llmpick cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("llmpick", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the llmpick binary and extra catalogs exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("llmpick"); err != nil {
		return fmt.Errorf("llmpick binary not found in PATH")
	}

	for _, catalog := range config.Catalogs {
		if catalog == "" {
			continue
		}
		if _, err := os.Stat(catalog); os.IsNotExist(err) {
			return fmt.Errorf("catalog not found at %s", catalog)
		}
	}

	return nil
}

// catalogName returns the display name of a catalog path.
func catalogName(catalog string) string {
	if catalog == "" {
		return "embedded"
	}
	return filepath.Base(catalog)
}

// runBenchmarks executes all benchmark cases across configured catalogs
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d catalogs, %d cases, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Catalogs), len(config.Cases), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, catalog := range config.Catalogs {
		fmt.Printf("Benchmarking %s catalog\n", catalogName(catalog))
		for _, c := range config.Cases {
			args := c.Args
			if catalog != "" {
				args = append(append([]string(nil), args...), "--catalog", catalog)
			}
			results = append(results, runBenchmarkSuite(config, catalogName(catalog), c.Name, args))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a case
func runBenchmarkSuite(config BenchmarkConfig, catalog, name string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", name, catalog)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, args, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Catalog:     catalog,
		Case:        name,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes an llmpick command multiple times with specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args = append(append([]string(nil), args...), "--cache-backend", cacheBackend, "--color", "no")

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("llmpick", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Ranked in") &&
		strings.Contains(outputStr, "Cache backend")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("llmpick_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"catalog", "case", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Catalog, result.Case, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-10s %-20s: No-cache: %s, Cold: %s, Warm: %s\n",
			result.Catalog, result.Case, result.NoCacheTime, result.ColdTime, result.WarmTime)
	}
}
