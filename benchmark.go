// Package mygrambench drives comparative latency and throughput
// measurements against MygramDB and MySQL FULLTEXT backends by issuing
// the same logical workload to each and aggregating per-query results
// into summary statistics.
package mygrambench

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mygramdb/mygrambench/types"
)

// DefaultTimeout is the per-query timeout used when Runner.Timeout
// is zero.
const DefaultTimeout = 60 * time.Second

// Client issues a single query against a backend.
//
// Query must never return an error: transport, protocol, and timeout
// failures are captured in the returned QueryResult with Success set
// to false, ElapsedMs zero, and a diagnostic in Response. ElapsedMs
// includes connection setup for every backend, so each measurement
// pays the full cost of a cold call.
type Client interface {
	Query(command string, timeout time.Duration) types.QueryResult
}

// Runner executes a workload against one backend client with a fixed
// pool of workers. The zero value of every field has a usable default.
type Runner struct {
	// Client is the backend under test.
	Client Client

	// Concurrency is the worker pool size. Values below 1 run
	// a single worker.
	Concurrency int

	// Iterations is how many times the query list is repeated.
	// Values below 1 run the list once.
	Iterations int

	// Timeout is the per-query timeout passed to the client.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// Logger, when set, receives debug-level dispatch logging.
	Logger *zap.SugaredLogger
}

// ExpandQueries repeats queries by literal concatenation: the list
// appended to itself iterations times, preserving order within each
// repetition block. ["a","b"] with 3 iterations yields a,b,a,b,a,b.
func ExpandQueries(queries []string, iterations int) []string {
	if iterations < 1 {
		iterations = 1
	}
	expanded := make([]string, 0, len(queries)*iterations)
	for i := 0; i < iterations; i++ {
		expanded = append(expanded, queries...)
	}
	return expanded
}

// Run expands queries by r.Iterations, dispatches every item to the
// worker pool, and blocks until each one has completed or failed.
// There are no retries and no global deadline; only the per-query
// timeout bounds individual calls. The summary's Times and Errors are
// accumulated in completion order; TotalWallMs spans from first
// submission to last collected result.
func (r Runner) Run(queries []string) types.Summary {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	expanded := ExpandQueries(queries, r.Iterations)

	if r.Logger != nil {
		r.Logger.Debugf("dispatching %d queries across %d workers", len(expanded), concurrency)
	}

	start := time.Now()

	// Every work item is queued up front; the pool size is the only
	// concurrency limit. Each item is claimed by exactly one worker.
	jobs := make(chan string, len(expanded))
	for _, command := range expanded {
		jobs <- command
	}
	close(jobs)

	results := make(chan types.QueryResult)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for command := range jobs {
				results <- r.Client.Query(command, timeout)
			}
		}()
	}

	// Unblock the collector once every worker has drained the queue.
	go func() {
		wg.Wait()
		close(results)
	}()

	// The fan-in channel is the single point of aggregation; no other
	// state is shared between workers.
	summary := types.Summary{Total: len(expanded)}
	for result := range results {
		if result.Success {
			summary.Successful++
			summary.Times = append(summary.Times, result.ElapsedMs)
		} else {
			summary.Failed++
			summary.Errors = append(summary.Errors, result.Response)
		}
	}

	summary.TotalWallMs = float64(time.Since(start)) / float64(time.Millisecond)

	if r.Logger != nil {
		r.Logger.Debugf("collected %d results (%d ok, %d failed) in %.1fms",
			summary.Total, summary.Successful, summary.Failed, summary.TotalWallMs)
	}

	return summary
}
