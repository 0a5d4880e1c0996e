package domain

import "time"

// WizardSession holds the answers of one pass through the diagnostic wizard.
// It is created on start and closed on completion or restart.
type WizardSession struct {
	ID           string
	Status       SessionStatus
	Step         WizardStep
	Plan         Plan
	ChallengeIDs []string
	UrgencyID    string
	ScopeID      string
	Answers      map[string]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}

// IsOpen reports whether the session still accepts answers.
func (s *WizardSession) IsOpen() bool {
	return s.Status == SessionActive
}

// PrimaryChallengeID returns the first selected challenge, or "".
func (s *WizardSession) PrimaryChallengeID() string {
	if len(s.ChallengeIDs) == 0 {
		return ""
	}
	return s.ChallengeIDs[0]
}

// NextStep derives the first unanswered step given the number of
// capability questions to ask.
func (s *WizardSession) NextStep(questionCount int) WizardStep {
	switch {
	case len(s.ChallengeIDs) == 0:
		return StepChallenge
	case s.UrgencyID == "":
		return StepUrgency
	case s.ScopeID == "":
		return StepScope
	case len(s.Answers) < questionCount:
		return StepCapability
	default:
		return StepReview
	}
}
