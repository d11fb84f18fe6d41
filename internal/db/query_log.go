package db

import "time"

// QueryRecord is one logged query.
type QueryRecord struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Jumps     int    `json:"jumps"`
}

// InsertQuery logs one served query and returns its row ID. Errors are
// swallowed: telemetry must never break a query.
func (d *DB) InsertQuery(kind, input string, jumps int) int64 {
	res, err := d.sql.Exec(
		"INSERT INTO query_log (timestamp, kind, input, jumps) VALUES (?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), kind, input, jumps,
	)
	if err != nil {
		return 0
	}
	id, _ := res.LastInsertId()
	return id
}

// RecentQueries returns the newest limit query records.
func (d *DB) RecentQueries(limit int) []QueryRecord {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.Query(
		"SELECT id, timestamp, kind, input, jumps FROM query_log ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var r QueryRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Kind, &r.Input, &r.Jumps); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}
