package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/domain"
)

// FormatDiagnosis renders a diagnosis response as a boxed report.
func FormatDiagnosis(resp *app.DiagnoseResponse) string {
	if resp == nil || resp.Result == nil {
		return Dim("No diagnosis.") + "\n"
	}
	out := FormatDiagnosisResult(resp.Result)
	if resp.RecordID != "" {
		out += Dim("Saved as ") + resp.RecordID + "\n"
	}
	return out
}

// FormatDiagnosisResult renders the body of a diagnosis: profile, ranked
// tools, quick wins, approach and next steps.
func FormatDiagnosisResult(r *domain.DiagnosisResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(r.PrimaryChallenge.Title), Dim(r.PrimaryChallenge.ID)))
	if len(r.ChallengeIDs) > 1 {
		b.WriteString(Dim("Also: "+strings.Join(r.ChallengeIDs[1:], ", ")) + "\n")
	}
	b.WriteString(fmt.Sprintf("Urgency   %s\n", r.Urgency.Title))
	b.WriteString(fmt.Sprintf("Scope     %s\n", r.Scope.Title))
	b.WriteString(fmt.Sprintf("Plan      %s\n", PlanBadge(r.Plan)))
	b.WriteString(fmt.Sprintf("Maturity  %s  %s\n", MaturityGauge(r.OverallMaturity), ComplexityBadge(r.MaturityBracket)))

	b.WriteString("\n" + Header("Recommended tools") + "\n")
	if len(r.RecommendedTools) == 0 {
		b.WriteString(Dim("No tools are available on this plan for the selected challenge.") + "\n")
	} else {
		scores := make(map[string]int, len(r.ScoredTools))
		for _, st := range r.ScoredTools {
			scores[st.Tool.ID] = st.Score
		}
		rows := make([][]string, 0, len(r.RecommendedTools))
		for i, t := range r.RecommendedTools {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				t.Name,
				string(t.Category),
				ComplexityBadge(t.Complexity),
				fmt.Sprintf("%d", scores[t.ID]),
			})
		}
		b.WriteString(RenderTable([]string{"#", "TOOL", "CATEGORY", "COMPLEXITY", "SCORE"}, rows))
	}

	if len(r.QuickWins) > 0 {
		b.WriteString("\n" + Header("Quick wins") + "\n")
		for _, t := range r.QuickWins {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleGreen.Render("▸"), t.Name, Dim(t.Duration)))
		}
	}
	if len(r.AdvancedTools) > 0 {
		names := make([]string, 0, len(r.AdvancedTools))
		for _, t := range r.AdvancedTools {
			names = append(names, t.Name)
		}
		b.WriteString("\n" + Dim("Advanced: "+strings.Join(names, ", ")) + "\n")
	}

	b.WriteString("\n" + Header("Approach") + "\n")
	b.WriteString(r.SuggestedApproach + "\n")
	b.WriteString(Dim("Timeframe: "+r.EstimatedTimeframe) + "\n")

	if len(r.NextSteps) > 0 {
		b.WriteString("\n" + Header("Next steps") + "\n")
		for i, step := range r.NextSteps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return RenderBox("Diagnosis", strings.TrimRight(b.String(), "\n")) + "\n"
}
