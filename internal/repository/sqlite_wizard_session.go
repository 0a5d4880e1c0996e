package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

const wizardSessionColumns = `id, status, step, plan, challenge_ids, urgency_id, scope_id, answers,
	created_at, updated_at, completed_at`

// SQLiteWizardSessionRepo implements WizardSessionRepo using a SQLite database.
type SQLiteWizardSessionRepo struct {
	db db.DBTX
}

func NewSQLiteWizardSessionRepo(conn db.DBTX) *SQLiteWizardSessionRepo {
	return &SQLiteWizardSessionRepo{db: conn}
}

func (r *SQLiteWizardSessionRepo) Create(ctx context.Context, s *domain.WizardSession) error {
	challengeIDs, answers, err := encodeSessionFields(s)
	if err != nil {
		return err
	}
	query := `INSERT INTO wizard_sessions (` + wizardSessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Status),
		string(s.Step),
		string(s.Plan),
		challengeIDs,
		s.UrgencyID,
		s.ScopeID,
		answers,
		s.CreatedAt.UTC().Format(timeLayout),
		s.UpdatedAt.UTC().Format(timeLayout),
		nullableTimeToString(s.CompletedAt, timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting wizard session: %w", err)
	}
	return nil
}

func (r *SQLiteWizardSessionRepo) GetByID(ctx context.Context, id string) (*domain.WizardSession, error) {
	query := `SELECT ` + wizardSessionColumns + ` FROM wizard_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWizardSessionRepo) GetActive(ctx context.Context) (*domain.WizardSession, error) {
	query := `SELECT ` + wizardSessionColumns + ` FROM wizard_sessions
		WHERE status = 'active' ORDER BY updated_at DESC LIMIT 1`
	return r.scanSession(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteWizardSessionRepo) Update(ctx context.Context, s *domain.WizardSession) error {
	challengeIDs, answers, err := encodeSessionFields(s)
	if err != nil {
		return err
	}
	query := `UPDATE wizard_sessions SET status = ?, step = ?, plan = ?, challenge_ids = ?,
		urgency_id = ?, scope_id = ?, answers = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(s.Status),
		string(s.Step),
		string(s.Plan),
		challengeIDs,
		s.UrgencyID,
		s.ScopeID,
		answers,
		s.UpdatedAt.UTC().Format(timeLayout),
		nullableTimeToString(s.CompletedAt, timeLayout),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating wizard session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating wizard session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("wizard session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWizardSessionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.WizardSession, error) {
	query := `SELECT ` + wizardSessionColumns + ` FROM wizard_sessions
		ORDER BY updated_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, clampLimit(limit, 20))
	if err != nil {
		return nil, fmt.Errorf("listing wizard sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WizardSession
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wizard sessions: %w", err)
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteWizardSessionRepo) scanSession(row rowScanner) (*domain.WizardSession, error) {
	var s domain.WizardSession
	var status, step, plan, challengeIDs, answers, createdAt, updatedAt string
	var completedAt sql.NullString

	err := row.Scan(&s.ID, &status, &step, &plan, &challengeIDs, &s.UrgencyID, &s.ScopeID, &answers,
		&createdAt, &updatedAt, &completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("wizard session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning wizard session: %w", err)
	}
	return populateSession(&s, status, step, plan, challengeIDs, answers, createdAt, updatedAt, completedAt)
}

func populateSession(s *domain.WizardSession, status, step, plan, challengeIDs, answers, createdAt, updatedAt string, completedAt sql.NullString) (*domain.WizardSession, error) {
	s.Status = domain.SessionStatus(status)
	s.Step = domain.WizardStep(step)
	s.Plan = domain.Plan(plan)
	if err := decodeJSON("challenge_ids", challengeIDs, &s.ChallengeIDs); err != nil {
		return nil, err
	}
	s.Answers = map[string]string{}
	if err := decodeJSON("answers", answers, &s.Answers); err != nil {
		return nil, err
	}

	var err error
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	s.CompletedAt = parseNullableTime(completedAt, timeLayout)
	return s, nil
}

func encodeSessionFields(s *domain.WizardSession) (challengeIDs, answers string, err error) {
	challengeIDs, err = encodeJSON(s.ChallengeIDs, "[]")
	if err != nil {
		return "", "", fmt.Errorf("encoding challenge ids: %w", err)
	}
	answers, err = encodeJSON(s.Answers, "{}")
	if err != nil {
		return "", "", fmt.Errorf("encoding answers: %w", err)
	}
	return challengeIDs, answers, nil
}
