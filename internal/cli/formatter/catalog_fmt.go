package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
)

// FormatToolList renders tools as a table. Tools the current plan cannot open
// are marked with a lock; pass an empty plan to skip the marking.
func FormatToolList(tools []domain.ToolRecord, current domain.Plan) string {
	if len(tools) == 0 {
		return Dim("No tools match.") + "\n"
	}

	rows := make([][]string, 0, len(tools))
	for _, t := range tools {
		plan := PlanBadge(t.RequiredPlan)
		if current != "" && !t.AccessibleOn(current) {
			plan += StyleRed.Render(" 🔒")
		}
		rows = append(rows, []string{
			Dim(t.ID),
			t.Name,
			string(t.Category),
			ComplexityBadge(t.Complexity),
			plan,
		})
	}

	var b strings.Builder
	b.WriteString(Header("Tools") + "\n")
	b.WriteString(RenderTable([]string{"ID", "NAME", "CATEGORY", "COMPLEXITY", "PLAN"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%d tools", len(tools))) + "\n")
	return b.String()
}

// FormatToolDetail renders one tool as a box.
func FormatToolDetail(t domain.ToolRecord, current domain.Plan) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(t.Name), Dim(t.ID)))
	b.WriteString(fmt.Sprintf("%s · %s · %s\n", t.Category, ComplexityBadge(t.Complexity), PlanBadge(t.RequiredPlan)))
	if t.Duration != "" {
		b.WriteString(Dim("Duration: "+t.Duration) + "\n")
	}
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}
	if len(t.Outputs) > 0 {
		b.WriteString("\n" + Bold("Outputs") + "\n")
		for _, o := range t.Outputs {
			b.WriteString("  • " + o + "\n")
		}
	}
	if len(t.Tags) > 0 {
		b.WriteString("\n" + Dim("Tags: "+strings.Join(t.Tags, ", ")) + "\n")
	}
	if current != "" && !t.AccessibleOn(current) {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("Upgrade to %s to open this tool.", t.RequiredPlan)) + "\n")
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n")) + "\n"
}

// FormatChallenges lists the challenge categories with their related tool categories.
func FormatChallenges(challenges []domain.ChallengeCategory) string {
	var b strings.Builder
	b.WriteString(Header("Challenges") + "\n")
	for _, c := range challenges {
		cats := make([]string, len(c.RelatedCategories))
		for i, rc := range c.RelatedCategories {
			cats[i] = string(rc)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(c.Title), Dim(c.ID)))
		if c.Description != "" {
			b.WriteString("  " + c.Description + "\n")
		}
		b.WriteString("  " + Dim("→ "+strings.Join(cats, ", ")) + "\n")
	}
	return b.String()
}

// FormatPlans renders the pricing tiers and marks the current plan.
func FormatPlans(tiers []domain.PlanTier, current domain.Plan) string {
	rows := make([][]string, 0, len(tiers))
	for _, t := range tiers {
		marker := " "
		if t.Plan == current {
			marker = StyleGreen.Render("●")
		}
		features := make([]string, len(t.Features))
		for i, f := range t.Features {
			features[i] = string(f)
		}
		rows = append(rows, []string{
			marker,
			PlanBadge(t.Plan),
			MonthlyPrice(t.MonthlyPrice),
			strings.Join(features, ", "),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Plans") + "\n")
	b.WriteString(RenderTable([]string{"", "PLAN", "PRICE", "FEATURES"}, rows))
	return b.String()
}

// FormatProfile renders the stored profile and the plan commands run under.
func FormatProfile(p *domain.UserProfile, effective domain.Plan) string {
	var b strings.Builder
	name := p.DisplayName
	if name == "" {
		name = p.ID
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Profile: "), name))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Plan:    "), PlanBadge(p.Plan)))
	if effective != "" && effective != p.Plan {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Overridden to %s by COMPASS_PLAN", effective)) + "\n")
	}
	if p.Industry != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Industry:"), p.Industry))
	}
	return b.String()
}
