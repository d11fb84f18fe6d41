// Package db persists the query log and the resolver's fixup cache in a
// local SQLite database. Everything here is telemetry or cold-start cache;
// losing the file costs nothing but a warm-up.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"jumpbot/internal/logger"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

func dbPath() string {
	// Prefer working directory so the DB is stable across go run / go build.
	// Fall back to executable directory for deployed builds.
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "jumpbot.db")
	}
	exe, _ := os.Executable()
	return filepath.Join(filepath.Dir(exe), "jumpbot.db")
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open() (*DB, error) {
	path := dbPath()
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	// Try to read current version
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS query_log (
				id        INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp TEXT NOT NULL,
				kind      TEXT NOT NULL,
				input     TEXT NOT NULL,
				jumps     INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS name_fixups (
				input     TEXT PRIMARY KEY,
				canonical TEXT NOT NULL
			);

			INSERT INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}
