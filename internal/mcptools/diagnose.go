package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/mark3labs/mcp-go/mcp"
)

// DiagnoseTool handles the compass_diagnose MCP tool.
type DiagnoseTool struct {
	svc app.DiagnoseUseCase
}

func NewDiagnoseTool(svc app.DiagnoseUseCase) *DiagnoseTool {
	return &DiagnoseTool{svc: svc}
}

func (t *DiagnoseTool) Definition() mcp.Tool {
	return mcp.NewTool("compass_diagnose",
		mcp.WithDescription(
			"Diagnose a business challenge and recommend strategy tools. "+
				"Returns the maturity bracket, recommended tools, quick wins, advanced tools, "+
				"a suggested approach with timeframe, and next steps.",
		),
		mcp.WithString("challenge_id",
			mcp.Required(),
			mcp.Description("Primary challenge id, e.g. growth-stagnation"),
		),
		mcp.WithArray("also_challenge_ids",
			mcp.Description("Further selected challenge ids that widen the tool pool"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("urgency_id",
			mcp.Required(),
			mcp.Description("One of crisis, urgent, important, exploratory"),
			mcp.Enum("crisis", "urgent", "important", "exploratory"),
		),
		mcp.WithString("scope_id",
			mcp.Required(),
			mcp.Description("One of enterprise, business-unit, function, initiative"),
		),
		mcp.WithObject("answers",
			mcp.Description("Capability answers keyed by question id, e.g. {\"data-maturity\": \"established\"}"),
		),
		mcp.WithString("plan",
			mcp.Description("Plan to score against; defaults to the stored profile plan"),
		),
		mcp.WithBoolean("save",
			mcp.Description("Save the result to history (Starter plan and above)"),
		),
	)
}

func (t *DiagnoseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	challengeID := strings.TrimSpace(req.GetString("challenge_id", ""))
	urgencyID := strings.TrimSpace(req.GetString("urgency_id", ""))
	scopeID := strings.TrimSpace(req.GetString("scope_id", ""))
	if challengeID == "" || urgencyID == "" || scopeID == "" {
		return mcp.NewToolResultError("'challenge_id', 'urgency_id', and 'scope_id' are required"), nil
	}

	dreq := app.NewDiagnoseRequest(challengeID, urgencyID, scopeID)
	dreq.AlsoChallengeIDs = stringSliceArg(req, "also_challenge_ids")
	dreq.Save = boolArg(req, "save", false)
	answers, err := stringMapArg(req, "answers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dreq.Answers = answers
	if dreq.Plan, err = planArg(req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.svc.Diagnose(ctx, dreq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderDiagnosis(resp)), nil
}

func renderDiagnosis(resp *app.DiagnoseResponse) string {
	r := resp.Result
	var b strings.Builder
	fmt.Fprintf(&b, "# Diagnosis: %s\n\n", r.PrimaryChallenge.Title)
	fmt.Fprintf(&b, "Urgency: %s | Scope: %s | Plan: %s\n", r.Urgency.Title, r.Scope.Title, r.Plan)
	fmt.Fprintf(&b, "Maturity: %.2f (%s)\n", r.OverallMaturity, r.MaturityBracket)
	if resp.RecordID != "" {
		fmt.Fprintf(&b, "Saved as: %s\n", resp.RecordID)
	}

	b.WriteString("\n## Recommended tools\n")
	if len(r.RecommendedTools) == 0 {
		b.WriteString("_No tools match this challenge on the current plan._\n")
	}
	writeToolList(&b, r.RecommendedTools)
	if len(r.QuickWins) > 0 {
		b.WriteString("\n## Quick wins\n")
		writeToolList(&b, r.QuickWins)
	}
	if len(r.AdvancedTools) > 0 {
		b.WriteString("\n## Advanced tools\n")
		writeToolList(&b, r.AdvancedTools)
	}

	fmt.Fprintf(&b, "\n## Approach\n%s\n\nTimeframe: %s\n", r.SuggestedApproach, r.EstimatedTimeframe)
	b.WriteString("\n## Next steps\n")
	for i, step := range r.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}
