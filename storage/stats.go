package storage

import (
	"fmt"
	"time"
)

// OverallStats represents overall statistics
type OverallStats struct {
	TotalInjections int
	TotalTypedChars int
	SuccessCount    int
	FailureCount    int
	AvgDurationMs   float64
}

// GetOverallStats retrieves overall statistics for the last N days
func (db *DB) GetOverallStats(days int) (*OverallStats, error) {
	query := `
		SELECT
			COUNT(*) as total_injections,
			COALESCE(SUM(typed_chars), 0) as total_typed_chars,
			COALESCE(SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END), 0) as success_count,
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0) as failure_count,
			COALESCE(AVG(duration_ms), 0) as avg_duration_ms
		FROM injections
		WHERE timestamp >= ?
	`

	since := time.Now().UTC().AddDate(0, 0, -days)

	var stats OverallStats
	err := db.conn.QueryRow(query, since).Scan(
		&stats.TotalInjections,
		&stats.TotalTypedChars,
		&stats.SuccessCount,
		&stats.FailureCount,
		&stats.AvgDurationMs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overall stats: %w", err)
	}

	return &stats, nil
}
