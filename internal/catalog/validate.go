package catalog

import (
	"fmt"

	"github.com/alexanderramin/compass/internal/domain"
)

// validateSchema checks the decoded catalog files for structural errors.
// Returns a slice of errors (empty if valid).
func validateSchema(tools *toolsFile, tax *taxonomyFile, plans *plansFile) []error {
	var errs []error

	if len(tools.Tools) == 0 {
		errs = append(errs, fmt.Errorf("at least one tool is required"))
	}
	toolIDs := map[string]bool{}
	seenCategory := map[domain.ToolCategory]bool{}
	for i, t := range tools.Tools {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tool[%d]: id is required", i))
		}
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tool[%d]: name is required", i))
		}
		if toolIDs[t.ID] {
			errs = append(errs, fmt.Errorf("tool[%d]: duplicate id %q", i, t.ID))
		}
		toolIDs[t.ID] = true

		cat := domain.ToolCategory(t.Category)
		if !domain.ValidToolCategories[cat] {
			errs = append(errs, fmt.Errorf("tool %q: unknown category %q", t.ID, t.Category))
		}
		seenCategory[cat] = true
		switch domain.Complexity(t.Complexity) {
		case domain.ComplexityIntro, domain.ComplexityIntermediate, domain.ComplexityAdvanced:
		default:
			errs = append(errs, fmt.Errorf("tool %q: unknown complexity %q", t.ID, t.Complexity))
		}
		if domain.PlanRank(domain.Plan(t.RequiredPlan)) < 0 {
			errs = append(errs, fmt.Errorf("tool %q: unknown required_plan %q", t.ID, t.RequiredPlan))
		}
	}
	for cat := range domain.ValidToolCategories {
		if !seenCategory[cat] {
			errs = append(errs, fmt.Errorf("category %q has no tools", cat))
		}
	}

	errs = append(errs, validateTaxonomy(tax)...)

	planSeen := map[domain.Plan]bool{}
	for i, p := range plans.Plans {
		plan := domain.Plan(p.Plan)
		if domain.PlanRank(plan) < 0 {
			errs = append(errs, fmt.Errorf("plan[%d]: unknown plan %q", i, p.Plan))
		}
		planSeen[plan] = true
	}
	for _, p := range domain.Plans {
		if !planSeen[p] {
			errs = append(errs, fmt.Errorf("plan %q is missing from the pricing table", p))
		}
	}

	return errs
}

func validateTaxonomy(tax *taxonomyFile) []error {
	var errs []error

	challengeIDs := map[string]bool{}
	for i, c := range tax.Challenges {
		if c.ID == "" || c.Title == "" {
			errs = append(errs, fmt.Errorf("challenge[%d]: id and title are required", i))
		}
		if challengeIDs[c.ID] {
			errs = append(errs, fmt.Errorf("challenge[%d]: duplicate id %q", i, c.ID))
		}
		challengeIDs[c.ID] = true
		if len(c.RelatedCategories) == 0 {
			errs = append(errs, fmt.Errorf("challenge %q: related_categories is required", c.ID))
		}
		for _, rc := range c.RelatedCategories {
			if !domain.ValidToolCategories[domain.ToolCategory(rc)] {
				errs = append(errs, fmt.Errorf("challenge %q: unknown related category %q", c.ID, rc))
			}
		}
	}

	urgencyIDs := map[string]bool{}
	for _, u := range tax.Urgencies {
		urgencyIDs[u.ID] = true
	}
	for _, id := range domain.UrgencyIDs {
		if !urgencyIDs[id] {
			errs = append(errs, fmt.Errorf("urgency %q is required", id))
		}
	}

	if len(tax.Scopes) == 0 {
		errs = append(errs, fmt.Errorf("at least one scope is required"))
	}

	if len(tax.Questions) == 0 {
		errs = append(errs, fmt.Errorf("at least one capability question is required"))
	}
	for _, q := range tax.Questions {
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("question %q: options are required", q.ID))
		}
		for _, o := range q.Options {
			if o.Score < 1 || o.Score > 4 {
				errs = append(errs, fmt.Errorf("question %q option %q: score %d outside 1..4", q.ID, o.ID, o.Score))
			}
		}
	}

	return errs
}
