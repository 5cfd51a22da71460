package types

// TailSampleCount is the minimum number of successful queries
// required before p95/p99 are reported. Below that the estimate
// is too noisy to be useful.
const TailSampleCount = 20

// Stats holds summary statistics over the successful-query
// latencies of a run, in milliseconds.
type Stats struct {
	Avg float64 `json:"avg_ms"`
	Min float64 `json:"min_ms"`
	Max float64 `json:"max_ms"`
	P50 float64 `json:"p50_ms"`
	P95 float64 `json:"p95_ms,omitempty"`
	P99 float64 `json:"p99_ms,omitempty"`

	// HasTail reports whether P95 and P99 are populated, which
	// happens only with at least TailSampleCount samples.
	HasTail bool `json:"-"`
}
