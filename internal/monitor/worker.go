package monitor

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// probeWorker runs one probe batch at the configured interval
func (m *Monitor) probeWorker() {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Duration(m.config.Interval))
	defer ticker.Stop()

	// Immediate first batch
	m.performProbe()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.performProbe()
		}
	}
}

// performProbe executes a single batch probe covering all targets and sends
// the run to the storage worker
func (m *Monitor) performProbe() {
	results, err := m.prober.Probe(m.ctx, m.config.Targets, m.config.Probe)
	if err != nil {
		log.Printf("Failed to probe %v: %v", m.config.Targets, err)
		return
	}

	r := run{
		id:        uuid.New().String(),
		timestamp: time.Now(),
		results:   results,
	}

	select {
	case m.runs <- r:
	default:
		log.Printf("Run channel full, dropping run %s", r.id)
	}
}

// processRuns persists completed probe runs
func (m *Monitor) processRuns() {
	defer m.wg.Done()

	for {
		select {
		case <-m.ctx.Done():
			return
		case r := <-m.runs:
			if err := m.db.SaveRun(r.id, r.timestamp, r.results); err != nil {
				log.Printf("Failed to save run %s: %v", r.id, err)
			}
		}
	}
}
