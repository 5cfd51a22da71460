package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mygramdb/mygrambench/types"
)

// maxDisplayedErrors caps how many failure diagnostics are printed.
// The summary keeps all of them.
const maxDisplayedErrors = 3

// printBanner shows the workload parameters and the host the benchmark
// runs from, so numbers can be compared across machines.
func printBanner(searchWords []string) {
	fmt.Println("=== Benchmark Configuration ===")
	fmt.Printf("Table: %s\n", table)
	fmt.Printf("Words: %v\n", searchWords)
	fmt.Printf("Query Type: %s\n", queryType)
	fmt.Printf("Limit: %d, Offset: %d\n", limit, offset)
	fmt.Printf("Concurrency: %d\n", concurrency)
	fmt.Printf("Iterations: %d\n", iterations)
	fmt.Printf("Host: %s\n", hostLine())
	fmt.Println()
}

func hostLine() string {
	hostname := "unknown"
	platform := runtime.GOOS
	if info, err := host.Info(); err == nil {
		hostname = info.Hostname
		platform = info.Platform
	}
	cores, _ := cpu.Counts(true)
	ramGB := 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		ramGB = float64(vm.Total) / 1024 / 1024 / 1024
	}
	return fmt.Sprintf("%s (%s/%s, %d cores, %.1fGB RAM)", hostname, platform, runtime.GOARCH, cores, ramGB)
}

// targetReport is the JSON shape emitted with --json.
type targetReport struct {
	Target string      `json:"target"`
	Host   string      `json:"host"`
	types.Summary
	Stats types.Stats `json:"stats"`
	QPS   float64     `json:"qps"`
}

// printSummary renders one target's statistics block.
func printSummary(title, addr string, s types.Summary) {
	stats := s.ComputeStats()

	if jsonOutput {
		report := targetReport{Target: title, Host: addr, Summary: s, Stats: stats, QPS: s.QPS()}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("=== %s ===\n", title)
	fmt.Printf("Host: %s\n", addr)
	fmt.Printf("Total queries: %d\n", s.Total)

	okLine := fmt.Sprintf("Successful: %d", s.Successful)
	if s.Failed == 0 {
		okLine = color.GreenString(okLine)
	}
	fmt.Println(okLine)

	failedLine := fmt.Sprintf("Failed: %d", s.Failed)
	if s.Failed > 0 {
		failedLine = color.RedString(failedLine)
	}
	fmt.Println(failedLine)

	fmt.Printf("Total time: %.1fms\n", s.TotalWallMs)

	if len(s.Times) > 0 {
		fmt.Printf("Avg: %.2fms\n", stats.Avg)
		fmt.Printf("Min: %.2fms\n", stats.Min)
		fmt.Printf("Max: %.2fms\n", stats.Max)
		fmt.Printf("P50: %.2fms\n", stats.P50)
		if stats.HasTail {
			fmt.Printf("P95: %.2fms\n", stats.P95)
			fmt.Printf("P99: %.2fms\n", stats.P99)
		}
		fmt.Printf("QPS: %.1f\n", s.QPS())
	}

	if len(s.Errors) > 0 {
		shown := s.Errors
		if len(shown) > maxDisplayedErrors {
			shown = shown[:maxDisplayedErrors]
		}
		for _, e := range shown {
			color.Red("Error: %s", e)
		}
		if hidden := len(s.Errors) - len(shown); hidden > 0 {
			fmt.Printf("(%d more errors not shown)\n", hidden)
		}
	}
	fmt.Println()
}

// printUnavailable reports a backend that could not be benchmarked at
// all, without failing the run.
func printUnavailable(title string, err error) {
	fmt.Printf("=== %s ===\n", title)
	color.Red("ERROR: %v", err)
	fmt.Println()
}
