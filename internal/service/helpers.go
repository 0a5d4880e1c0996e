package service

import (
	"time"

	"github.com/alexanderramin/compass/internal/domain"
)

// recordFromResult snapshots a diagnosis for history. sessionID is empty for
// one-shot diagnoses.
func recordFromResult(id, sessionID string, result *domain.DiagnosisResult, now time.Time) *domain.DiagnosisRecord {
	toolIDs := make([]string, 0, len(result.RecommendedTools))
	for _, t := range result.RecommendedTools {
		toolIDs = append(toolIDs, t.ID)
	}
	return &domain.DiagnosisRecord{
		ID:          id,
		SessionID:   sessionID,
		ChallengeID: result.PrimaryChallenge.ID,
		UrgencyID:   result.Urgency.ID,
		ScopeID:     result.Scope.ID,
		Plan:        result.Plan,
		Maturity:    result.OverallMaturity,
		ToolIDs:     toolIDs,
		Result:      *result,
		CreatedAt:   now,
	}
}
