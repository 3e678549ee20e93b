package models

import "time"

// Stats represents aggregated statistics for a target across probe runs
type Stats struct {
	Target     string  `json:"target"`
	TotalRuns  int     `json:"total_runs"`
	Sent       int     `json:"sent"`
	Received   int     `json:"received"`
	AvgRTT     float64 `json:"avg_rtt"`
	MaxRTT     float64 `json:"max_rtt"`
	MinRTT     float64 `json:"min_rtt"`
	PacketLoss float64 `json:"packet_loss"` // percentage
}

// Outage represents a period of consecutive total-loss probe runs
type Outage struct {
	Target     string    `json:"target"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	FailedRuns int       `json:"failed_runs"`
	Duration   string    `json:"duration"`
}
