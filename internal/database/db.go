package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps sql.DB with additional methods
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS probe_results (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT NOT NULL,
        timestamp DATETIME NOT NULL,
        target TEXT NOT NULL,
        sent INTEGER NOT NULL,
        received INTEGER NOT NULL,
        loss REAL,
        min_ms REAL,
        avg_ms REAL,
        max_ms REAL,
        stddev_ms REAL,
        times_ms TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE INDEX IF NOT EXISTS idx_timestamp ON probe_results(timestamp);
    CREATE INDEX IF NOT EXISTS idx_target_timestamp ON probe_results(target, timestamp);
    CREATE INDEX IF NOT EXISTS idx_run ON probe_results(run_id);

    CREATE TABLE IF NOT EXISTS hourly_stats (
        hour DATETIME NOT NULL,
        target TEXT NOT NULL,
        total_runs INTEGER,
        sent INTEGER,
        received INTEGER,
        avg_rtt_ms REAL,
        max_rtt_ms REAL,
        min_rtt_ms REAL,
        packet_loss_percent REAL,
        PRIMARY KEY (hour, target)
    );
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}
