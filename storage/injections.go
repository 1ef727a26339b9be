package storage

import (
	"database/sql"
	"fmt"
	"time"

	"pasteprime/inject"
)

// Injection is one recorded clipboard typing run
type Injection struct {
	ID             int64
	Timestamp      time.Time
	ClipboardChars int
	TypedChars     int
	DurationMs     int64
	Success        bool
	ErrorMessage   string
}

// SaveInjection saves an injection to the database
func (db *DB) SaveInjection(in *Injection) error {
	query := `
		INSERT INTO injections (
			timestamp, clipboard_chars, typed_chars, duration_ms, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	var errorMessage sql.NullString
	if in.ErrorMessage != "" {
		errorMessage = sql.NullString{String: in.ErrorMessage, Valid: true}
	}

	result, err := db.conn.Exec(query,
		in.Timestamp.UTC(), in.ClipboardChars, in.TypedChars, in.DurationMs,
		in.Success, errorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save injection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	in.ID = id
	return nil
}

// RecordInjection stores the outcome of an injector run
func (db *DB) RecordInjection(res inject.Result) error {
	in := &Injection{
		Timestamp:      res.Started,
		ClipboardChars: res.Length,
		TypedChars:     res.Typed,
		DurationMs:     res.Duration.Milliseconds(),
		Success:        res.Err == nil,
	}
	if res.Err != nil {
		in.ErrorMessage = res.Err.Error()
	}
	return db.SaveInjection(in)
}

// GetInjections retrieves injections with pagination, newest first
func (db *DB) GetInjections(limit, offset int) ([]Injection, error) {
	query := `
		SELECT id, timestamp, clipboard_chars, typed_chars, duration_ms, success, error_message
		FROM injections
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query injections: %w", err)
	}
	defer rows.Close()

	var injections []Injection
	for rows.Next() {
		var in Injection
		var errorMessage sql.NullString

		err := rows.Scan(
			&in.ID, &in.Timestamp, &in.ClipboardChars, &in.TypedChars,
			&in.DurationMs, &in.Success, &errorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan injection: %w", err)
		}

		if errorMessage.Valid {
			in.ErrorMessage = errorMessage.String
		}

		injections = append(injections, in)
	}

	return injections, rows.Err()
}

// Prune deletes injections older than the given number of days
func (db *DB) Prune(days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	result, err := db.conn.Exec(`DELETE FROM injections WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune injections: %w", err)
	}

	return result.RowsAffected()
}

// GetInjectionCount returns the total number of injections
func (db *DB) GetInjectionCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM injections").Scan(&count)
	return count, err
}
