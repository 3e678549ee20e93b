package models

import (
	"context"
	"time"
)

// Database interface defines operations for data persistence
type Database interface {
	SaveRun(runID string, timestamp time.Time, results ResultSet) error
	GetRecent(hours int) ([]RunResult, error)
	GetStats(hours int) ([]Stats, error)
	GetOutages(days int) ([]Outage, error)
	ArchiveOldData() error
	Close() error
}

// Runner executes the external probing tool and returns its captured output
type Runner interface {
	Run(ctx context.Context, path string, args []string) (string, error)
}

// Monitor interface defines the monitoring lifecycle
type Monitor interface {
	Start() error
	Stop()
	Wait()
}

// WebServer interface defines web server operations
type WebServer interface {
	Start() error
}
