package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
)

// FormatHistory renders saved diagnoses newest first.
func FormatHistory(records []*domain.DiagnosisRecord) string {
	return FormatHistoryFrom(records, time.Now())
}

// FormatHistoryFrom is FormatHistory with a fixed reference time for the
// relative timestamps.
func FormatHistoryFrom(records []*domain.DiagnosisRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No saved diagnoses yet. Run `compass diagnose --save` or `compass wizard`.") + "\n"
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		top := "--"
		if len(r.ToolIDs) > 0 {
			top = r.ToolIDs[0]
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.CreatedAt, now),
			r.ChallengeID,
			r.UrgencyID,
			fmt.Sprintf("%.2f", r.Maturity),
			top,
		})
	}

	var b strings.Builder
	b.WriteString(Header("History") + "\n")
	b.WriteString(RenderTable([]string{"ID", "WHEN", "CHALLENGE", "URGENCY", "MATURITY", "TOP TOOL"}, rows))
	return b.String()
}

// FormatRecord renders a stored diagnosis with its id and timestamp.
func FormatRecord(r *domain.DiagnosisRecord) string {
	header := fmt.Sprintf("%s %s  %s %s\n", Dim("Record"), r.ID, Dim("saved"), r.CreatedAt.Local().Format("Jan 2, 2006 15:04"))
	result := r.Result
	return header + FormatDiagnosisResult(&result)
}

// FormatSession summarizes a wizard session and the step it is waiting on.
func FormatSession(s *domain.WizardSession, questionCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n", Dim("Session"), TruncID(s.ID), sessionStatus(s.Status)))
	b.WriteString(fmt.Sprintf("Challenges  %s\n", orDash(strings.Join(s.ChallengeIDs, ", "))))
	b.WriteString(fmt.Sprintf("Urgency     %s\n", orDash(s.UrgencyID)))
	b.WriteString(fmt.Sprintf("Scope       %s\n", orDash(s.ScopeID)))
	b.WriteString(fmt.Sprintf("Answers     %d/%d\n", len(s.Answers), questionCount))
	if s.IsOpen() {
		b.WriteString(Dim("Next step: "+string(s.NextStep(questionCount))) + "\n")
	}
	b.WriteString(Dim("Updated "+HumanTimestamp(s.UpdatedAt)) + "\n")
	return b.String()
}

func sessionStatus(st domain.SessionStatus) string {
	switch st {
	case domain.SessionActive:
		return StyleGreen.Render("● active")
	case domain.SessionCompleted:
		return StyleDim.Render("✔ completed")
	default:
		return StyleDim.Render("✖ " + string(st))
	}
}

func orDash(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}
