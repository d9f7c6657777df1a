package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/amberly/schoolbook-backend/internal/config"
)

// Open creates the single long-lived SQLite handle used by every record
// operation. The connection pool is capped at one connection so all
// statements serialize through the same handle.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", cfg.DatabasePath, cfg.BusyTimeoutMS)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Str("path", cfg.DatabasePath).
		Msg("SQLite store opened")

	return db, nil
}

// InitSchema creates the seven record tables if they do not exist yet.
// Deliberately no foreign keys, no uniqueness on text columns: dependent
// rows keep their student_id even after the student is deleted.
func InitSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id INTEGER PRIMARY KEY,
			name TEXT,
			class TEXT,
			age INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS teachers (
			id INTEGER PRIMARY KEY,
			name TEXT,
			subject TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id INTEGER PRIMARY KEY,
			student_id INTEGER,
			date TEXT,
			status TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id INTEGER PRIMARY KEY,
			student_id INTEGER,
			amount REAL,
			paid INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id INTEGER PRIMARY KEY,
			student_id INTEGER,
			subject TEXT,
			marks INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS library (
			id INTEGER PRIMARY KEY,
			book TEXT,
			student_id INTEGER,
			issue_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS timetable (
			id INTEGER PRIMARY KEY,
			class TEXT,
			day TEXT,
			subject TEXT,
			teacher TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
