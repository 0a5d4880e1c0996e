package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

const diagnosisRecordColumns = `id, session_id, challenge_id, urgency_id, scope_id, plan, maturity,
	tool_ids, result_json, created_at`

// SQLiteDiagnosisRecordRepo implements DiagnosisRecordRepo using a SQLite
// database. The full result is stored as JSON next to a few indexed columns
// used for listing.
type SQLiteDiagnosisRecordRepo struct {
	db db.DBTX
}

func NewSQLiteDiagnosisRecordRepo(conn db.DBTX) *SQLiteDiagnosisRecordRepo {
	return &SQLiteDiagnosisRecordRepo{db: conn}
}

func (r *SQLiteDiagnosisRecordRepo) Create(ctx context.Context, rec *domain.DiagnosisRecord) error {
	toolIDs, err := encodeJSON(rec.ToolIDs, "[]")
	if err != nil {
		return fmt.Errorf("encoding tool ids: %w", err)
	}
	result, err := encodeJSON(rec.Result, "{}")
	if err != nil {
		return fmt.Errorf("encoding diagnosis result: %w", err)
	}

	query := `INSERT INTO diagnosis_records (` + diagnosisRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		nullableString(rec.SessionID),
		rec.ChallengeID,
		rec.UrgencyID,
		rec.ScopeID,
		string(rec.Plan),
		rec.Maturity,
		toolIDs,
		result,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting diagnosis record: %w", err)
	}
	return nil
}

func (r *SQLiteDiagnosisRecordRepo) GetByID(ctx context.Context, id string) (*domain.DiagnosisRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("diagnosis record %q: %w", id, ErrNotFound)
	}
	// substr compares the prefix literally; LIKE would treat % and _ as wildcards.
	query := `SELECT ` + diagnosisRecordColumns + ` FROM diagnosis_records
		WHERE substr(id, 1, length(?)) = ? ORDER BY id = ? DESC LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, id, id, id)
	if err != nil {
		return nil, fmt.Errorf("querying diagnosis record: %w", err)
	}
	defer rows.Close()

	records, err := r.scanRecords(rows)
	if err != nil {
		return nil, err
	}
	switch {
	case len(records) == 0:
		return nil, fmt.Errorf("diagnosis record %s: %w", id, ErrNotFound)
	case records[0].ID == id:
		return records[0], nil
	case len(records) > 1:
		return nil, fmt.Errorf("diagnosis record %s: %w", id, ErrAmbiguousID)
	}
	return records[0], nil
}

func (r *SQLiteDiagnosisRecordRepo) List(ctx context.Context, limit int) ([]*domain.DiagnosisRecord, error) {
	query := `SELECT ` + diagnosisRecordColumns + ` FROM diagnosis_records
		ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, clampLimit(limit, 10))
	if err != nil {
		return nil, fmt.Errorf("listing diagnosis records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteDiagnosisRecordRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.DiagnosisRecord, error) {
	query := `SELECT ` + diagnosisRecordColumns + ` FROM diagnosis_records
		WHERE session_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing diagnosis records by session: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteDiagnosisRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diagnosis_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting diagnosis record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting diagnosis record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("diagnosis record %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDiagnosisRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.DiagnosisRecord, error) {
	var records []*domain.DiagnosisRecord
	for rows.Next() {
		var rec domain.DiagnosisRecord
		var sessionID sql.NullString
		var plan, toolIDs, result, createdAt string

		err := rows.Scan(&rec.ID, &sessionID, &rec.ChallengeID, &rec.UrgencyID, &rec.ScopeID,
			&plan, &rec.Maturity, &toolIDs, &result, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning diagnosis record row: %w", err)
		}

		rec.SessionID = sessionID.String
		rec.Plan = domain.Plan(plan)
		if err := decodeJSON("tool_ids", toolIDs, &rec.ToolIDs); err != nil {
			return nil, err
		}
		if err := decodeJSON("result_json", result, &rec.Result); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diagnosis records: %w", err)
	}
	return records, nil
}
