package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/mark3labs/mcp-go/mcp"
)

// AdvisorTool handles the compass_advisor MCP tool.
type AdvisorTool struct {
	svc app.AdvisorUseCase
}

func NewAdvisorTool(svc app.AdvisorUseCase) *AdvisorTool {
	return &AdvisorTool{svc: svc}
}

func (t *AdvisorTool) Definition() mcp.Tool {
	return mcp.NewTool("compass_advisor",
		mcp.WithDescription("Ask the strategy advisor a free-text question. Requires the Starter plan or above."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The question, e.g. 'How do we defend share against a new entrant?'"),
		),
		mcp.WithString("industry",
			mcp.Description("Industry for a contextual fact, e.g. retail or healthcare"),
		),
		mcp.WithString("plan",
			mcp.Description("Plan to answer under; defaults to the stored profile plan"),
		),
	)
}

func (t *AdvisorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := planArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := t.svc.Ask(ctx, app.AdvisorRequest{
		Message:  req.GetString("message", ""),
		Industry: req.GetString("industry", ""),
		Plan:     plan,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	if resp.Locked {
		fmt.Fprintf(&b, "%s\n\n(Requires the %s plan.)\n", resp.Text, resp.RequiredPlan)
		return mcp.NewToolResultText(b.String()), nil
	}
	fmt.Fprintf(&b, "%s\n", resp.Text)
	if resp.Fact != "" {
		fmt.Fprintf(&b, "\nIndustry note: %s\n", resp.Fact)
	}
	if len(resp.Tools) > 0 {
		b.WriteString("\nTools to try:\n")
		writeToolList(&b, resp.Tools)
	}
	return mcp.NewToolResultText(b.String()), nil
}
