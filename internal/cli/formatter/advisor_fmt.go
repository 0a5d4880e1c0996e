package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
)

// FormatAdvisorReply renders one advisor answer.
func FormatAdvisorReply(resp *app.AdvisorResponse) string {
	var b strings.Builder

	if resp.Locked {
		b.WriteString(StyleYellow.Render(resp.Text) + "\n")
		if resp.RequiredPlan != "" {
			b.WriteString(Dim(fmt.Sprintf("Requires the %s plan. Run `compass plan set %s`.", resp.RequiredPlan, resp.RequiredPlan)) + "\n")
		}
		return b.String()
	}

	b.WriteString(StylePurple.Render("advisor") + Dim(" ("+resp.Topic+")") + "\n")
	b.WriteString(resp.Text + "\n")
	if resp.Fact != "" {
		b.WriteString(Dim("Industry note: ") + resp.Fact + "\n")
	}
	if len(resp.Tools) > 0 {
		names := make([]string, len(resp.Tools))
		for i, t := range resp.Tools {
			names[i] = t.Name
		}
		b.WriteString(Dim("Tools to try: ") + strings.Join(names, ", ") + "\n")
	}
	return b.String()
}

// FormatChatWelcome is the first message of the advisor chat.
func FormatChatWelcome() string {
	return StyleHeader.Render("STRATEGY ADVISOR") + "\n" +
		Dim("Describe what is holding the business back. /quit or esc to leave.") + "\n"
}
