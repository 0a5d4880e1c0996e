package diagnosis

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/compass/internal/domain"
)

const (
	maxRecommended = 5
	maxQuickWins   = 3
	maxAdvanced    = 3

	maturityMatchBonus = 3
	urgencyBonus       = 2
	relevanceBase      = 3
)

// ScoringInput is everything a single tool's score depends on.
type ScoringInput struct {
	Tool              domain.ToolRecord
	RelatedCategories []domain.ToolCategory
	MaturityBracket   domain.Complexity
	UrgencyID         string
}

// ScoreTool sums the scoring factors for one tool.
func ScoreTool(input ScoringInput) domain.ScoredTool {
	result := domain.ScoredTool{Tool: input.Tool}

	factors := []func(ScoringInput) (int, *domain.ScoreReason){
		scoreMaturityMatch,
		scoreUrgencyFit,
		scoreCategoryRelevance,
	}
	for _, f := range factors {
		delta, reason := f(input)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

func scoreMaturityMatch(input ScoringInput) (int, *domain.ScoreReason) {
	if input.Tool.Complexity != input.MaturityBracket {
		return 0, nil
	}
	return maturityMatchBonus, &domain.ScoreReason{
		Code:    domain.ReasonMaturityMatch,
		Message: fmt.Sprintf("%s complexity fits your capability maturity", input.Tool.Complexity),
		Delta:   maturityMatchBonus,
	}
}

func scoreUrgencyFit(input ScoringInput) (int, *domain.ScoreReason) {
	switch {
	case input.UrgencyID == domain.UrgencyCrisis && input.Tool.Complexity == domain.ComplexityIntro:
		return urgencyBonus, &domain.ScoreReason{
			Code:    domain.ReasonCrisisIntro,
			Message: "Quick to apply while in crisis mode",
			Delta:   urgencyBonus,
		}
	case input.UrgencyID == domain.UrgencyExploratory && input.Tool.Complexity == domain.ComplexityAdvanced:
		return urgencyBonus, &domain.ScoreReason{
			Code:    domain.ReasonExploratoryAdvanced,
			Message: "Depth suits an exploratory timeline",
			Delta:   urgencyBonus,
		}
	}
	return 0, nil
}

// scoreCategoryRelevance rewards tools from earlier-listed related categories.
// Positions past the third earn nothing.
func scoreCategoryRelevance(input ScoringInput) (int, *domain.ScoreReason) {
	idx := categoryIndex(input.RelatedCategories, input.Tool.Category)
	if idx < 0 {
		return 0, nil
	}
	delta := relevanceBase - idx
	if delta <= 0 {
		return 0, nil
	}
	msg := "Secondary category for this challenge"
	if idx == 0 {
		msg = "Primary category for this challenge"
	}
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonCategoryRelevance,
		Message: msg,
		Delta:   delta,
	}
}

func categoryIndex(categories []domain.ToolCategory, cat domain.ToolCategory) int {
	for i, c := range categories {
		if c == cat {
			return i
		}
	}
	return -1
}

// FilterByCategory keeps tools whose category is in related, preserving
// catalog order.
func FilterByCategory(tools []domain.ToolRecord, related []domain.ToolCategory) []domain.ToolRecord {
	var out []domain.ToolRecord
	for _, t := range tools {
		if categoryIndex(related, t.Category) >= 0 {
			out = append(out, t)
		}
	}
	return out
}

// FilterByPlan keeps tools the given plan is entitled to, preserving order.
func FilterByPlan(tools []domain.ToolRecord, plan domain.Plan) []domain.ToolRecord {
	var out []domain.ToolRecord
	for _, t := range tools {
		if t.AccessibleOn(plan) {
			out = append(out, t)
		}
	}
	return out
}

// RankTools scores each tool and sorts by score descending. The sort is
// stable: equal scores keep their catalog order.
func RankTools(tools []domain.ToolRecord, related []domain.ToolCategory, bracket domain.Complexity, urgencyID string) []domain.ScoredTool {
	scored := make([]domain.ScoredTool, 0, len(tools))
	for _, t := range tools {
		scored = append(scored, ScoreTool(ScoringInput{
			Tool:              t,
			RelatedCategories: related,
			MaturityBracket:   bracket,
			UrgencyID:         urgencyID,
		}))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Buckets is the sliced view of a ranking handed to the UI.
type Buckets struct {
	Ranked      []domain.ScoredTool
	Recommended []domain.ToolRecord
	QuickWins   []domain.ToolRecord
	Advanced    []domain.ToolRecord
}

// BucketTools filters the catalog for a challenge and plan and slices the
// result into recommendation buckets.
//
// Recommended is the top five of the category and plan filtered ranking.
// QuickWins are the first three Intro tools of that same filtered set, in
// catalog order. Advanced are the first three Advanced or paid tools of the
// category-relevant set before entitlement, so they can include tools the
// plan cannot open yet.
func BucketTools(all []domain.ToolRecord, related []domain.ToolCategory, plan domain.Plan, bracket domain.Complexity, urgencyID string) Buckets {
	relevant := FilterByCategory(all, related)
	entitled := FilterByPlan(relevant, plan)
	ranked := RankTools(entitled, related, bracket, urgencyID)

	b := Buckets{Ranked: ranked}
	for i := 0; i < len(ranked) && i < maxRecommended; i++ {
		b.Recommended = append(b.Recommended, ranked[i].Tool)
	}
	for _, t := range entitled {
		if len(b.QuickWins) == maxQuickWins {
			break
		}
		if t.Complexity == domain.ComplexityIntro {
			b.QuickWins = append(b.QuickWins, t)
		}
	}
	for _, t := range relevant {
		if len(b.Advanced) == maxAdvanced {
			break
		}
		if t.Complexity == domain.ComplexityAdvanced || t.RequiredPlan != domain.PlanFree {
			b.Advanced = append(b.Advanced, t)
		}
	}
	return b
}
