package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateSingleActiveSession(db); err != nil {
		return fmt.Errorf("enforcing single active wizard session: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS wizard_sessions (
		id            TEXT PRIMARY KEY,
		status        TEXT NOT NULL DEFAULT 'active'
		              CHECK(status IN ('active','completed','abandoned')),
		step          TEXT NOT NULL DEFAULT 'challenge'
		              CHECK(step IN ('challenge','urgency','scope','capability','review')),
		plan          TEXT NOT NULL DEFAULT 'Free',
		challenge_ids TEXT NOT NULL DEFAULT '[]',
		urgency_id    TEXT NOT NULL DEFAULT '',
		scope_id      TEXT NOT NULL DEFAULT '',
		answers       TEXT NOT NULL DEFAULT '{}',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		completed_at  TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_wizard_sessions_status ON wizard_sessions(status, updated_at)`,

	`CREATE TABLE IF NOT EXISTS diagnosis_records (
		id           TEXT PRIMARY KEY,
		session_id   TEXT REFERENCES wizard_sessions(id) ON DELETE SET NULL,
		challenge_id TEXT NOT NULL,
		urgency_id   TEXT NOT NULL,
		scope_id     TEXT NOT NULL,
		plan         TEXT NOT NULL,
		maturity     REAL NOT NULL,
		tool_ids     TEXT NOT NULL DEFAULT '[]',
		result_json  TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_diagnosis_records_created ON diagnosis_records(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_diagnosis_records_session ON diagnosis_records(session_id)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id           TEXT PRIMARY KEY DEFAULT 'default',
		display_name TEXT NOT NULL DEFAULT '',
		plan         TEXT NOT NULL DEFAULT 'Free'
		             CHECK(plan IN ('Free','Starter','Pro','Enterprise'))
	)`,

	// Seed default user profile
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,

	// Industry drives advisor facts
	`ALTER TABLE user_profile ADD COLUMN industry TEXT NOT NULL DEFAULT ''`,
}

// migrateSingleActiveSession abandons all but the most recently updated
// active session, then adds the partial unique index that keeps it that way.
// Idempotent: once the index exists there is nothing to repair.
func migrateSingleActiveSession(db *sql.DB) error {
	ctx := context.Background()

	var exists int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_wizard_sessions_one_active'`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking active session index: %w", err)
	}
	if exists > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `UPDATE wizard_sessions SET status = 'abandoned'
		WHERE status = 'active' AND id NOT IN (
			SELECT id FROM wizard_sessions WHERE status = 'active'
			ORDER BY updated_at DESC, id DESC LIMIT 1
		)`); err != nil {
		return fmt.Errorf("abandoning stale active sessions: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_wizard_sessions_one_active
		ON wizard_sessions(status) WHERE status = 'active'`); err != nil {
		return fmt.Errorf("creating active session index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing active session migration: %w", err)
	}
	committed = true
	return nil
}
