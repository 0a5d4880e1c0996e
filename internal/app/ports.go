package app

import (
	"context"

	"github.com/alexanderramin/compass/internal/domain"
)

type DiagnoseUseCase interface {
	Diagnose(ctx context.Context, req DiagnoseRequest) (*DiagnoseResponse, error)
}

type HistoryUseCase interface {
	List(ctx context.Context, req HistoryRequest) ([]*domain.DiagnosisRecord, error)
	Get(ctx context.Context, id string) (*domain.DiagnosisRecord, error)
}

type AdvisorUseCase interface {
	Ask(ctx context.Context, req AdvisorRequest) (*AdvisorResponse, error)
}

type WizardUseCase interface {
	Start(ctx context.Context, restart bool) (*domain.WizardSession, error)
	Resume(ctx context.Context) (*domain.WizardSession, error)
	SelectChallenges(ctx context.Context, sessionID string, challengeIDs []string) (*domain.WizardSession, error)
	SetUrgency(ctx context.Context, sessionID, urgencyID string) (*domain.WizardSession, error)
	SetScope(ctx context.Context, sessionID, scopeID string) (*domain.WizardSession, error)
	Answer(ctx context.Context, sessionID, questionID, optionID string) (*domain.WizardSession, error)
	Complete(ctx context.Context, sessionID string) (*DiagnoseResponse, error)
	Reset(ctx context.Context, sessionID string) error
}

type ProfileUseCase interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	SetPlan(ctx context.Context, plan domain.Plan) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
}
