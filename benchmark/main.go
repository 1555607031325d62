// Package main provides a performance benchmarking tool for the salesrank CLI.
// It generates people files of increasing size, runs each output mode several
// times, treats the first successful run as cold and averages the rest as warm,
// and writes a CSV summary for documentation.
//
// Prerequisites:
// - salesrank binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where generated input files are written
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	json "github.com/json-iterator/go"

	"github.com/huangsam/salesrank/schema"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Size     int
	Output   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Sizes   []int
	Outputs []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes:   []int{1_000, 10_000, 100_000, 1_000_000},
		Outputs: []string{"csv", "json", "parquet"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the salesrank binary and the work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("salesrank"); err != nil {
		return fmt.Errorf("salesrank binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// generateInputs writes a people file with n random people and a definition file
func generateInputs(dir string, n int) (peoplePath, definitionPath string, err error) {
	rng := rand.New(rand.NewPCG(uint64(n), 42))
	people := make([]schema.Person, n)
	for i := range people {
		people[i] = schema.Person{
			Name:                 fmt.Sprintf("Person %07d", i),
			TotalSales:           rng.Int64N(1_000_000),
			SalesPeriod:          1 + rng.Int64N(24),
			ExperienceMultiplier: 0.5 + rng.Float64(),
		}
	}
	def := schema.ReportDefinition{TopPerformersThreshold: 10, UseExperienceMultiplier: true, PeriodLimit: 18}

	peoplePath = filepath.Join(dir, fmt.Sprintf("people_%d.json", n))
	definitionPath = filepath.Join(dir, "definition.json")
	if err := writeJSONFile(peoplePath, people); err != nil {
		return "", "", err
	}
	if err := writeJSONFile(definitionPath, def); err != nil {
		return "", "", err
	}
	return peoplePath, definitionPath, nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// runBenchmarks executes all benchmark tests across configured sizes
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %d outputs, %v timeout, %d runs\n",
		len(config.Sizes), len(config.Outputs), config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		fmt.Printf("Generating %d people\n", size)
		peoplePath, definitionPath, err := generateInputs(config.WorkDir, size)
		if err != nil {
			return nil, fmt.Errorf("failed to generate inputs: %w", err)
		}

		for _, output := range config.Outputs {
			cold, warm := runBenchmark(config, peoplePath, definitionPath, output)
			coldStr, warmStr := "TIMEOUT", "TIMEOUT"
			if cold > 0 {
				coldStr = fmt.Sprintf("%.3fs", cold)
			}
			if len(warm) > 0 {
				var sum float64
				for _, t := range warm {
					sum += t
				}
				warmStr = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
			}
			fmt.Printf("  %-8s cold: %s, warm average: %s\n", output, coldStr, warmStr)
			results = append(results, BenchmarkResult{Size: size, Output: output, ColdTime: coldStr, WarmTime: warmStr})
		}
	}

	return results, nil
}

// runBenchmark executes a salesrank report multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, peoplePath, definitionPath, output string) (coldTime float64, warmTimes []float64) {
	outFile := filepath.Join(config.WorkDir, "TopPerformers."+output)
	args := []string{"report", peoplePath, definitionPath, "--output", output, "--output-file", outFile, "--log-level", "error"}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("salesrank", args...)
		cmd.Dir = config.WorkDir

		done := make(chan error, 1)
		go func() {
			done <- cmd.Run()
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/salesrank_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"size", "output", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{fmt.Sprint(result.Size), result.Output, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, output := range config.Outputs {
		fmt.Printf("%s output:\n", output)
		for _, result := range results {
			if result.Output == output {
				fmt.Printf("  %-9d: Cold: %s, Warm: %s\n", result.Size, result.ColdTime, result.WarmTime)
			}
		}
	}
}
