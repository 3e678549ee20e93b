package models

import "time"

// Result represents the aggregated outcome of one batch of probes to a
// single target. Times keeps one entry per probe in send order; probes that
// produced no reply are recorded as the configured timeout value, so
// len(Times) always equals Sent.
type Result struct {
	Target   string    `json:"target"`
	Sent     int       `json:"sent"`
	Received int       `json:"received"`
	Loss     float64   `json:"loss"`
	Min      float64   `json:"min_ms"`
	Avg      float64   `json:"avg_ms"`
	Max      float64   `json:"max_ms"`
	StdDev   float64   `json:"stddev_ms"`
	Times    []float64 `json:"times_ms"`
}

// ResultSet maps a target address to its Result. A target that produced no
// output line is absent from the map entirely.
type ResultSet map[string]Result

// RunResult is a stored Result together with its run metadata.
type RunResult struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Result
}
