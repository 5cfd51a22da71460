package types

// QueryResult is the outcome of one query issued to a backend.
// A result is produced exactly once per dispatched query and is
// never mutated after the worker that created it hands it off.
type QueryResult struct {
	// Success reports whether the backend acknowledged the query.
	// What counts as an acknowledgement is backend-specific: a
	// positive reply prefix for MygramDB, error-free execution
	// for MySQL.
	Success bool `json:"success"`

	// ElapsedMs is the time spent on the request/response exchange,
	// connection setup included. Zero when Success is false.
	ElapsedMs float64 `json:"elapsed_ms"`

	// Response holds the raw backend reply on success, or a
	// diagnostic message on failure.
	Response string `json:"response,omitempty"`
}
