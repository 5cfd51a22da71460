// Package types defines the result and statistics types shared by the
// benchmark runner, the backend clients, and the reporter.
package types

import "sort"

// Summary aggregates every QueryResult of a single benchmark run.
// It is built once, after all workers have finished, and never
// mutated afterward. Invariants: Successful+Failed == Total and
// len(Times) == Successful.
type Summary struct {
	Total      int `json:"total_queries"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`

	// TotalWallMs is the wall-clock span of the whole run, from
	// first submission to last collected result. It is always at
	// least the largest individual latency and, with concurrency,
	// usually far below the sum of all latencies.
	TotalWallMs float64 `json:"total_time_ms"`

	// Times holds the latencies of successful queries in completion
	// order. Statistics derived from it sort a copy first, so they
	// do not depend on that order.
	Times []float64 `json:"times,omitempty"`

	// Errors holds one diagnostic per failed query, in completion
	// order. The full list is kept; the reporter only displays the
	// first few.
	Errors []string `json:"errors,omitempty"`
}

// QPS returns the successful-query throughput over the wall-clock
// span of the run.
func (s Summary) QPS() float64 {
	if s.TotalWallMs <= 0 {
		return 0
	}
	return float64(s.Successful) / (s.TotalWallMs / 1000)
}

// ComputeStats computes summary statistics over the successful-query
// latencies. The zero Stats is returned when there were no successes.
// P95 and P99 are filled in only with TailSampleCount or more samples,
// using the floor(0.95*n) and floor(0.99*n) indices of the ascending
// sort (0-based).
func (s Summary) ComputeStats() Stats {
	var stats Stats
	if len(s.Times) == 0 {
		return stats
	}

	sorted := make([]float64, len(s.Times))
	copy(sorted, s.Times)
	sort.Float64s(sorted)

	var sum float64
	for _, t := range sorted {
		sum += t
	}

	stats.Avg = sum / float64(len(sorted))
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.P50 = median(sorted)

	if len(sorted) >= TailSampleCount {
		stats.P95 = sorted[int(float64(len(sorted))*0.95)]
		stats.P99 = sorted[int(float64(len(sorted))*0.99)]
		stats.HasTail = true
	}

	return stats
}

// median expects sorted to be in ascending order and non-empty.
func median(sorted []float64) float64 {
	half := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[half-1] + sorted[half]) / 2
	}
	return sorted[half]
}
