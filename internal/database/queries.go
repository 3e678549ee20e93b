package database

import (
	"database/sql"
	"encoding/json"
	"math"
	"time"

	"batchping/internal/models"
)

// SaveRun saves every result of one probe run in a single transaction
func (db *DB) SaveRun(runID string, timestamp time.Time, results models.ResultSet) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
        INSERT INTO probe_results (run_id, timestamp, target, sent, received, loss, min_ms, avg_ms, max_ms, stddev_ms, times_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range results {
		times, err := json.Marshal(r.Times)
		if err != nil {
			continue
		}
		_, err = stmt.Exec(runID, timestamp, r.Target, r.Sent, r.Received,
			nullIfNaN(r.Loss), nullIfNaN(r.Min), nullIfNaN(r.Avg),
			nullIfNaN(r.Max), nullIfNaN(r.StdDev), string(times))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// nullIfNaN maps undefined statistics (zero-sample results) to SQL NULL,
// which sqlite accepts where NaN would not round-trip.
func nullIfNaN(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// GetRecent retrieves recent probe results
func (db *DB) GetRecent(hours int) ([]models.RunResult, error) {
	query := `
        SELECT run_id, timestamp, target, sent, received, loss, min_ms, avg_ms, max_ms, stddev_ms, times_ms
        FROM probe_results
        WHERE timestamp > datetime('now', '-' || ? || ' hours')
        ORDER BY timestamp DESC
        LIMIT 10000
    `

	rows, err := db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.RunResult
	for rows.Next() {
		var r models.RunResult
		var loss, min, avg, max, stddev sql.NullFloat64
		var times sql.NullString
		err := rows.Scan(&r.RunID, &r.Timestamp, &r.Target, &r.Sent, &r.Received,
			&loss, &min, &avg, &max, &stddev, &times)
		if err != nil {
			continue
		}
		r.Loss = loss.Float64
		r.Min = min.Float64
		r.Avg = avg.Float64
		r.Max = max.Float64
		r.StdDev = stddev.Float64
		if times.Valid {
			json.Unmarshal([]byte(times.String), &r.Times)
		}
		results = append(results, r)
	}

	return results, nil
}

// GetStats retrieves aggregated statistics per target
func (db *DB) GetStats(hours int) ([]models.Stats, error) {
	query := `
        SELECT
            target,
            COUNT(*) as total_runs,
            SUM(sent) as sent,
            SUM(received) as received,
            AVG(CASE WHEN received > 0 THEN avg_ms ELSE NULL END) as avg_rtt,
            MAX(CASE WHEN received > 0 THEN max_ms ELSE NULL END) as max_rtt,
            MIN(CASE WHEN received > 0 THEN min_ms ELSE NULL END) as min_rtt,
            ROUND((1.0 - (CAST(SUM(received) AS REAL) / MAX(SUM(sent), 1))) * 100, 2) as packet_loss
        FROM probe_results
        WHERE timestamp > datetime('now', '-' || ? || ' hours')
        GROUP BY target
    `

	rows, err := db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.Stats
	for rows.Next() {
		var s models.Stats
		var avgRTT, maxRTT, minRTT sql.NullFloat64
		err := rows.Scan(&s.Target, &s.TotalRuns, &s.Sent, &s.Received,
			&avgRTT, &maxRTT, &minRTT, &s.PacketLoss)
		if err != nil {
			continue
		}
		s.AvgRTT = avgRTT.Float64
		s.MaxRTT = maxRTT.Float64
		s.MinRTT = minRTT.Float64
		stats = append(stats, s)
	}

	return stats, nil
}

// GetOutages retrieves periods of consecutive total-loss runs per target
func (db *DB) GetOutages(days int) ([]models.Outage, error) {
	query := `
        WITH grouped_failures AS (
            SELECT
                target,
                timestamp,
                (received = 0 AND sent > 0) as failed,
                ROW_NUMBER() OVER (PARTITION BY target ORDER BY timestamp) -
                ROW_NUMBER() OVER (PARTITION BY target, (received = 0 AND sent > 0) ORDER BY timestamp) as grp
            FROM probe_results
            WHERE timestamp > datetime('now', '-' || ? || ' days')
        )
        SELECT
            target,
            MIN(timestamp) as start_time,
            MAX(timestamp) as end_time,
            COUNT(*) as failed_runs
        FROM grouped_failures
        WHERE failed
        GROUP BY target, grp
        HAVING COUNT(*) >= 2
        ORDER BY start_time DESC
        LIMIT 100
    `

	rows, err := db.Query(query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outages []models.Outage
	for rows.Next() {
		var o models.Outage
		err := rows.Scan(&o.Target, &o.StartTime, &o.EndTime, &o.FailedRuns)
		if err != nil {
			continue
		}
		o.Duration = o.EndTime.Sub(o.StartTime).String()
		outages = append(outages, o)
	}

	return outages, nil
}
