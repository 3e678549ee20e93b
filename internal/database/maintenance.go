package database

import (
	"time"
)

// ArchiveOldData rolls old raw results into hourly_stats and cleans up
func (db *DB) ArchiveOldData() error {
	// First, ensure hourly stats are captured for old data
	archiveQuery := `
        INSERT OR IGNORE INTO hourly_stats (hour, target, total_runs, sent, received, avg_rtt_ms, max_rtt_ms, min_rtt_ms, packet_loss_percent)
        SELECT
            strftime('%Y-%m-%d %H:00:00', timestamp) as hour,
            target,
            COUNT(*) as total_runs,
            SUM(sent) as sent,
            SUM(received) as received,
            AVG(CASE WHEN received > 0 THEN avg_ms ELSE NULL END) as avg_rtt_ms,
            MAX(CASE WHEN received > 0 THEN max_ms ELSE NULL END) as max_rtt_ms,
            MIN(CASE WHEN received > 0 THEN min_ms ELSE NULL END) as min_rtt_ms,
            ROUND((1.0 - (CAST(SUM(received) AS REAL) / MAX(SUM(sent), 1))) * 100, 2) as packet_loss_percent
        FROM probe_results
        WHERE timestamp < datetime('now', '-7 days')
        AND timestamp > datetime('now', '-90 days')
        GROUP BY hour, target
    `

	if _, err := db.Exec(archiveQuery); err != nil {
		return err
	}

	// Delete raw probe results older than 7 days (we keep aggregated data)
	deleteQuery := `DELETE FROM probe_results WHERE timestamp < datetime('now', '-7 days')`
	if _, err := db.Exec(deleteQuery); err != nil {
		return err
	}

	// Delete hourly stats older than 90 days
	deleteStatsQuery := `DELETE FROM hourly_stats WHERE hour < datetime('now', '-90 days')`
	if _, err := db.Exec(deleteStatsQuery); err != nil {
		return err
	}

	// Vacuum to reclaim space (run occasionally)
	if time.Now().Day() == 1 { // Run on first day of month
		_, err := db.Exec("VACUUM")
		return err
	}

	return nil
}
