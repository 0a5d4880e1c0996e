package testutil

import (
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/uuid"
)

// DevelopingAnswers answers every embedded capability question "developing".
func DevelopingAnswers() map[string]string {
	return map[string]string{
		"strategy-clarity":     "developing",
		"data-maturity":        "developing",
		"execution-discipline": "developing",
		"change-readiness":     "developing",
	}
}

// WizardSession options
type SessionOption func(*domain.WizardSession)

func WithSessionStatus(s domain.SessionStatus) SessionOption {
	return func(ws *domain.WizardSession) {
		ws.Status = s
		if s == domain.SessionCompleted {
			now := ws.UpdatedAt
			ws.CompletedAt = &now
		}
	}
}

func WithSessionPlan(p domain.Plan) SessionOption {
	return func(ws *domain.WizardSession) {
		ws.Plan = p
	}
}

func WithChallenges(ids ...string) SessionOption {
	return func(ws *domain.WizardSession) {
		ws.ChallengeIDs = ids
	}
}

func WithUrgencyAndScope(urgencyID, scopeID string) SessionOption {
	return func(ws *domain.WizardSession) {
		ws.UrgencyID = urgencyID
		ws.ScopeID = scopeID
	}
}

func WithAnswers(answers map[string]string) SessionOption {
	return func(ws *domain.WizardSession) {
		ws.Answers = answers
	}
}

func WithUpdatedAt(t time.Time) SessionOption {
	return func(ws *domain.WizardSession) {
		ws.UpdatedAt = t
	}
}

// NewTestSession returns an active, empty session on the Free plan.
func NewTestSession(opts ...SessionOption) *domain.WizardSession {
	now := time.Now().UTC()
	s := &domain.WizardSession{
		ID:        uuid.New().String(),
		Status:    domain.SessionActive,
		Step:      domain.StepChallenge,
		Plan:      domain.PlanFree,
		Answers:   map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Step = s.NextStep(len(DevelopingAnswers()))
	return s
}

// DiagnosisRecord options
type RecordOption func(*domain.DiagnosisRecord)

func WithRecordSession(id string) RecordOption {
	return func(r *domain.DiagnosisRecord) {
		r.SessionID = id
	}
}

func WithRecordCreatedAt(t time.Time) RecordOption {
	return func(r *domain.DiagnosisRecord) {
		r.CreatedAt = t
	}
}

func WithRecordID(id string) RecordOption {
	return func(r *domain.DiagnosisRecord) {
		r.ID = id
	}
}

// NewTestRecord builds a record around a minimal result for challengeID.
func NewTestRecord(challengeID string, opts ...RecordOption) *domain.DiagnosisRecord {
	r := &domain.DiagnosisRecord{
		ID:          uuid.New().String(),
		ChallengeID: challengeID,
		UrgencyID:   domain.UrgencyImportant,
		ScopeID:     "function",
		Plan:        domain.PlanFree,
		Maturity:    2,
		ToolIDs:     []string{"swot-analysis"},
		Result: domain.DiagnosisResult{
			PrimaryChallenge: domain.ChallengeCategory{ID: challengeID, Title: challengeID},
			ChallengeIDs:     []string{challengeID},
			OverallMaturity:  2,
			MaturityBracket:  domain.ComplexityIntro,
			RecommendedTools: []domain.ToolRecord{{ID: "swot-analysis", Name: "SWOT Analysis"}},
			NextSteps:        []string{"Start with the SWOT Analysis"},
		},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
