package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it is
// safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS academic_state (
		id             TEXT PRIMARY KEY CHECK(id = 'default'),
		current_cgpa   TEXT NOT NULL DEFAULT '',
		credits_earned TEXT NOT NULL DEFAULT '',
		updated_at     TEXT
	)`,

	`INSERT OR IGNORE INTO academic_state (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS settings (
		id           TEXT PRIMARY KEY CHECK(id = 'default'),
		default_rows INTEGER NOT NULL DEFAULT 3
		             CHECK(default_rows BETWEEN 1 AND 50)
	)`,

	`INSERT OR IGNORE INTO settings (id, default_rows) VALUES ('default', 3)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id           TEXT PRIMARY KEY,
		seq          INTEGER NOT NULL UNIQUE,
		code         TEXT NOT NULL DEFAULT '',
		credit_hours TEXT NOT NULL DEFAULT '',
		grade        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS semesters (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		is_open    INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS semester_courses (
		id           TEXT PRIMARY KEY,
		semester_id  TEXT NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		credit_hours TEXT NOT NULL DEFAULT '',
		grade        TEXT NOT NULL DEFAULT '',
		UNIQUE(semester_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_semester_courses_semester ON semester_courses(semester_id)`,
}
