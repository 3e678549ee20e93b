package report

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func (g *Generator) generateTextReport(outputDir string, hours int) error {
	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Batch Probe Report\n")
	fmt.Fprintf(file, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Period: Last %d hours\n\n", hours)
	fmt.Fprintln(file, strings.Repeat("=", 60))

	// Overall statistics
	query := `
        SELECT
            target,
            COUNT(*) as total_runs,
            SUM(sent) as sent,
            SUM(received) as received,
            AVG(CASE WHEN received > 0 THEN avg_ms ELSE NULL END) as avg_rtt,
            MAX(CASE WHEN received > 0 THEN max_ms ELSE NULL END) as max_rtt,
            MIN(CASE WHEN received > 0 THEN min_ms ELSE NULL END) as min_rtt,
            AVG(CASE WHEN received > 0 THEN stddev_ms ELSE NULL END) as avg_stddev
        FROM probe_results
        WHERE timestamp > datetime('now', '-' || ? || ' hours')
        GROUP BY target
    `

	rows, err := g.db.Query(query, hours)
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Fprintln(file, "\nOVERALL STATISTICS")

	for rows.Next() {
		var target string
		var totalRuns, sent, received int
		var avgRTT, maxRTT, minRTT, avgStdDev sql.NullFloat64

		if err := rows.Scan(&target, &totalRuns, &sent, &received, &avgRTT, &maxRTT, &minRTT, &avgStdDev); err != nil {
			continue
		}

		packetLoss := 0.0
		if sent > 0 {
			packetLoss = (1 - float64(received)/float64(sent)) * 100
		}

		fmt.Fprintf(file, "Target: %s\n", target)
		fmt.Fprintf(file, "  Probe Runs: %d\n", totalRuns)
		fmt.Fprintf(file, "  Probes Sent: %d\n", sent)
		fmt.Fprintf(file, "  Replies: %d\n", received)
		fmt.Fprintf(file, "  Packet Loss: %.2f%%\n", packetLoss)

		if avgRTT.Valid {
			fmt.Fprintf(file, "  Average RTT: %.2f ms\n", avgRTT.Float64)
			fmt.Fprintf(file, "  Min RTT: %.2f ms\n", minRTT.Float64)
			fmt.Fprintf(file, "  Max RTT: %.2f ms\n", maxRTT.Float64)
			fmt.Fprintf(file, "  Avg StdDev: %.3f ms\n", avgStdDev.Float64)
		}
		fmt.Fprintln(file)
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))

	// Outage periods
	outageQuery := `
        WITH grouped_failures AS (
            SELECT
                target,
                timestamp,
                (received = 0 AND sent > 0) as failed,
                ROW_NUMBER() OVER (PARTITION BY target ORDER BY timestamp) -
                ROW_NUMBER() OVER (PARTITION BY target, (received = 0 AND sent > 0) ORDER BY timestamp) as grp
            FROM probe_results
            WHERE timestamp > datetime('now', '-' || ? || ' hours')
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
    `

	outageRows, outageErr := g.db.Query(outageQuery, hours)
	if outageErr != nil {
		return outageErr
	}
	defer outageRows.Close()

	fmt.Fprintln(file, "\nOUTAGE PERIODS (2+ consecutive total-loss runs)")

	outageCount := 0
	for outageRows.Next() {
		var target string
		var startTime, endTime time.Time
		var failedRuns int

		if scanErr := outageRows.Scan(&target, &startTime, &endTime, &failedRuns); scanErr != nil {
			continue
		}

		duration := endTime.Sub(startTime)
		fmt.Fprintf(file, "Outage #%d\n", outageCount+1)
		fmt.Fprintf(file, "  Target: %s\n", target)
		fmt.Fprintf(file, "  Start: %s\n", startTime.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(file, "  End: %s\n", endTime.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(file, "  Duration: %s\n", duration)
		fmt.Fprintf(file, "  Failed Runs: %d\n", failedRuns)
		fmt.Fprintln(file)

		outageCount++
	}

	if outageCount == 0 {
		fmt.Fprintln(file, "No significant outages detected.")
	} else {
		fmt.Fprintf(file, "\nTotal Outages: %d\n", outageCount)
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nThis report documents network connectivity issues.")
	fmt.Fprintln(file, "Charts and detailed data are available in the accompanying files.")

	return nil
}
