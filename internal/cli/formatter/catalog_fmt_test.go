package formatter

import (
	"testing"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleTools() []domain.ToolRecord {
	return []domain.ToolRecord{
		{ID: "growth-levers", Name: "Growth Levers Map", Category: domain.CategoryGrowth,
			Complexity: domain.ComplexityIntro, RequiredPlan: domain.PlanFree},
		{ID: "growth-portfolio", Name: "Growth Portfolio", Category: domain.CategoryGrowth,
			Complexity: domain.ComplexityAdvanced, RequiredPlan: domain.PlanPro,
			Description: "Balance bets across horizons.", Outputs: []string{"Portfolio chart"}, Tags: []string{"growth", "portfolio"}},
	}
}

func TestFormatToolList_MarksLockedTools(t *testing.T) {
	out := stripANSI(FormatToolList(sampleTools(), domain.PlanStarter))

	assert.Contains(t, out, "TOOLS")
	assert.Contains(t, out, "growth-levers")
	assert.Contains(t, out, "Pro 🔒")
	assert.NotContains(t, out, "Free 🔒")
	assert.Contains(t, out, "2 tools")
}

func TestFormatToolList_NoPlanSkipsLocks(t *testing.T) {
	out := stripANSI(FormatToolList(sampleTools(), ""))
	assert.NotContains(t, out, "🔒")
}

func TestFormatToolList_Empty(t *testing.T) {
	assert.Equal(t, "No tools match.\n", stripANSI(FormatToolList(nil, domain.PlanFree)))
}

func TestFormatToolDetail(t *testing.T) {
	tool := sampleTools()[1]

	out := stripANSI(FormatToolDetail(tool, domain.PlanFree))
	assert.Contains(t, out, "Growth Portfolio")
	assert.Contains(t, out, "Balance bets across horizons.")
	assert.Contains(t, out, "• Portfolio chart")
	assert.Contains(t, out, "Tags: growth, portfolio")
	assert.Contains(t, out, "Upgrade to Pro to open this tool.")

	out = stripANSI(FormatToolDetail(tool, domain.PlanEnterprise))
	assert.NotContains(t, out, "Upgrade")
}

func TestFormatChallenges(t *testing.T) {
	out := stripANSI(FormatChallenges([]domain.ChallengeCategory{{
		ID: "growth-stagnation", Title: "Growth Stagnation", Description: "Revenue has flattened.",
		RelatedCategories: []domain.ToolCategory{domain.CategoryGrowth, domain.CategoryDiagnosis},
	}}))
	assert.Contains(t, out, "Growth Stagnation  growth-stagnation")
	assert.Contains(t, out, "Revenue has flattened.")
	assert.Contains(t, out, "→ Growth, Diagnosis")
}

func TestFormatPlans_MarksCurrent(t *testing.T) {
	tiers := []domain.PlanTier{
		{Plan: domain.PlanFree, Features: []domain.Feature{domain.FeatureDiagnostic}},
		{Plan: domain.PlanStarter, MonthlyPrice: 29, Features: []domain.Feature{domain.FeatureDiagnostic, domain.FeatureAdvisor}},
	}
	out := stripANSI(FormatPlans(tiers, domain.PlanStarter))
	assert.Contains(t, out, "PLANS")
	assert.Contains(t, out, "free")
	assert.Contains(t, out, "$29/mo")
	assert.Contains(t, out, "diagnostic, advisor")
	assert.Contains(t, out, "●  Starter")
}

func TestFormatProfile(t *testing.T) {
	p := &domain.UserProfile{ID: "default", Plan: domain.PlanFree, Industry: "saas"}

	out := stripANSI(FormatProfile(p, domain.PlanFree))
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "Free")
	assert.Contains(t, out, "saas")
	assert.NotContains(t, out, "Overridden")

	out = stripANSI(FormatProfile(p, domain.PlanPro))
	assert.Contains(t, out, "Overridden to Pro by COMPASS_PLAN")
}
