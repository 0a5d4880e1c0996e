package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/compass/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ErrAmbiguousID is returned when an id prefix matches more than one row.
var ErrAmbiguousID = errors.New("ambiguous id prefix")

type WizardSessionRepo interface {
	Create(ctx context.Context, s *domain.WizardSession) error
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	// GetActive returns the single active session or ErrNotFound.
	GetActive(ctx context.Context) (*domain.WizardSession, error)
	Update(ctx context.Context, s *domain.WizardSession) error
	ListRecent(ctx context.Context, limit int) ([]*domain.WizardSession, error)
}

type DiagnosisRecordRepo interface {
	Create(ctx context.Context, r *domain.DiagnosisRecord) error
	// GetByID accepts a full id or a unique prefix of one.
	GetByID(ctx context.Context, id string) (*domain.DiagnosisRecord, error)
	List(ctx context.Context, limit int) ([]*domain.DiagnosisRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.DiagnosisRecord, error)
	Delete(ctx context.Context, id string) error
}

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
