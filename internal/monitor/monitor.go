package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"batchping/internal/config"
	"batchping/internal/database"
	"batchping/internal/fping"
	"batchping/internal/models"
)

// run carries one completed probe batch to the storage worker
type run struct {
	id        string
	timestamp time.Time
	results   models.ResultSet
}

// Monitor coordinates periodic batch probing. One fping invocation covers
// every configured target per tick.
type Monitor struct {
	config *config.Config
	db     *database.DB
	prober *fping.Prober
	runs   chan run
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Monitor
func New(cfg *config.Config, db *database.DB, prober *fping.Prober) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		config: cfg,
		db:     db,
		prober: prober,
		runs:   make(chan run, 16),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins the monitoring process
func (m *Monitor) Start() error {
	log.Printf("Starting monitor with %d targets", len(m.config.Targets))

	// Start result processor
	m.wg.Add(1)
	go m.processRuns()

	// Start the batch probing worker
	m.wg.Add(1)
	go m.probeWorker()

	// Start maintenance routines
	m.wg.Add(1)
	go m.maintenanceWorker()

	log.Printf("Monitor started. Probing %v every %v", m.config.Targets, time.Duration(m.config.Interval))
	return nil
}

// Stop gracefully stops the monitor
func (m *Monitor) Stop() {
	log.Println("Stopping monitor...")
	m.cancel()
}

// Wait blocks until all goroutines finish
func (m *Monitor) Wait() {
	m.wg.Wait()
	log.Println("Monitor stopped")
}
