package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

const defaultProfileID = "default"

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
// There is one profile per database, seeded by migration.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, display_name, plan, industry FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, defaultProfileID)

	var p domain.UserProfile
	var plan string
	err := row.Scan(&p.ID, &p.DisplayName, &plan, &p.Industry)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.Plan = domain.Plan(plan)
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = defaultProfileID
	}
	query := `INSERT INTO user_profile (id, display_name, plan, industry)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			plan = excluded.plan,
			industry = excluded.industry`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.DisplayName, string(p.Plan), p.Industry)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
