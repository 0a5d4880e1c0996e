package app

import (
	"time"

	"github.com/alexanderramin/compass/internal/domain"
)

// DiagnoseRequest is a one-shot diagnosis outside the wizard.
type DiagnoseRequest struct {
	ChallengeID string
	// AlsoChallengeIDs are further selected challenges that widen the pool.
	AlsoChallengeIDs []string
	UrgencyID        string
	ScopeID          string
	Answers          map[string]string
	// Plan overrides the stored profile plan when set.
	Plan *domain.Plan
	Save bool
}

func NewDiagnoseRequest(challengeID, urgencyID, scopeID string) DiagnoseRequest {
	return DiagnoseRequest{
		ChallengeID: challengeID,
		UrgencyID:   urgencyID,
		ScopeID:     scopeID,
		Answers:     map[string]string{},
	}
}

type DiagnoseResponse struct {
	Result *domain.DiagnosisResult
	// RecordID is set when the result was saved to history.
	RecordID    string
	GeneratedAt time.Time
}

type HistoryRequest struct {
	Limit int
}

func NewHistoryRequest() HistoryRequest {
	return HistoryRequest{Limit: 10}
}
