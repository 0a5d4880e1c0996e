package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHistoryFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	records := []*domain.DiagnosisRecord{
		{ID: "0123456789abcdef", ChallengeID: "growth-stagnation", UrgencyID: "important",
			Maturity: 2.5, ToolIDs: []string{"growth-levers"}, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "fedcba9876543210", ChallengeID: "cost-pressure", UrgencyID: "crisis",
			Maturity: 1, CreatedAt: now.Add(-72 * time.Hour)},
	}

	out := stripANSI(FormatHistoryFrom(records, now))
	assert.Contains(t, out, "HISTORY")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "Mar 7, 2026")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "growth-levers")
	assert.Contains(t, out, "--")
}

func TestFormatHistory_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatHistory(nil)), "No saved diagnoses yet")
}

func TestFormatRecord(t *testing.T) {
	rec := &domain.DiagnosisRecord{ID: "rec-1", Result: *sampleResult(), CreatedAt: time.Now()}
	out := stripANSI(FormatRecord(rec))
	assert.Contains(t, out, "Record rec-1")
	assert.Contains(t, out, "Growth Stagnation")
}

func TestFormatSession(t *testing.T) {
	s := &domain.WizardSession{
		ID:           "sess-0001-abcdef",
		Status:       domain.SessionActive,
		ChallengeIDs: []string{"growth-stagnation"},
		UrgencyID:    "urgent",
		Answers:      map[string]string{},
		UpdatedAt:    time.Now(),
	}

	out := stripANSI(FormatSession(s, 4))
	assert.Contains(t, out, "sess-000")
	assert.Contains(t, out, "● active")
	assert.Contains(t, out, "growth-stagnation")
	assert.Contains(t, out, "urgent")
	assert.Contains(t, out, "Answers     0/4")
	assert.Contains(t, out, "Next step: scope")

	s.Status = domain.SessionCompleted
	out = stripANSI(FormatSession(s, 4))
	assert.Contains(t, out, "✔ completed")
	assert.NotContains(t, out, "Next step")
}

func TestFormatAdvisorReply(t *testing.T) {
	out := stripANSI(FormatAdvisorReply(&app.AdvisorResponse{
		Topic: "growth",
		Text:  "Start with the levers.",
		Fact:  "SaaS churn compounds.",
		Tools: []domain.ToolRecord{{Name: "Growth Levers Map"}, {Name: "Ansoff Matrix"}},
	}))
	assert.Contains(t, out, "advisor (growth)")
	assert.Contains(t, out, "Start with the levers.")
	assert.Contains(t, out, "Industry note: SaaS churn compounds.")
	assert.Contains(t, out, "Tools to try: Growth Levers Map, Ansoff Matrix")
}

func TestFormatAdvisorReply_Locked(t *testing.T) {
	out := stripANSI(FormatAdvisorReply(&app.AdvisorResponse{
		Text: "The advisor is part of the Starter plan.", Locked: true, RequiredPlan: domain.PlanStarter,
	}))
	assert.Contains(t, out, "The advisor is part of the Starter plan.")
	assert.Contains(t, out, "compass plan set Starter")
	assert.NotContains(t, out, "Tools to try")
}
