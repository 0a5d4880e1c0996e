package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_LegacyProfileAndDuplicateSessions simulates an older
// database: user_profile without the industry column and two sessions left
// active by a crash mid-restart. Migrate must add the column with its default,
// keep the newest session active, and abandon the other.
func TestMigrate_UpgradePath_LegacyProfileAndDuplicateSessions(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	legacyStatements := []string{
		`CREATE TABLE wizard_sessions (
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
		`CREATE TABLE user_profile (
			id           TEXT PRIMARY KEY DEFAULT 'default',
			display_name TEXT NOT NULL DEFAULT '',
			plan         TEXT NOT NULL DEFAULT 'Free'
			             CHECK(plan IN ('Free','Starter','Pro','Enterprise'))
		)`,
		`INSERT INTO user_profile (id, display_name, plan) VALUES ('default', 'Ada', 'Pro')`,
		`INSERT INTO wizard_sessions (id, status, created_at, updated_at)
			VALUES ('old', 'active', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
		`INSERT INTO wizard_sessions (id, status, created_at, updated_at)
			VALUES ('new', 'active', '2026-01-02T00:00:00Z', '2026-01-02T00:00:00Z')`,
	}
	for _, stmt := range legacyStatements {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var name, plan, industry string
	err = db.QueryRow(`SELECT display_name, plan, industry FROM user_profile WHERE id = 'default'`).Scan(&name, &plan, &industry)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
	assert.Equal(t, "Pro", plan)
	assert.Equal(t, "", industry)

	statuses := map[string]string{}
	rows, err := db.Query(`SELECT id, status FROM wizard_sessions`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id, status string
		require.NoError(t, rows.Scan(&id, &status))
		statuses[id] = status
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, map[string]string{"old": "abandoned", "new": "active"}, statuses)

	// Second run is a no-op.
	require.NoError(t, Migrate(db))
}
