package domain

import (
	"fmt"
	"strings"
)

type Plan string

const (
	PlanFree       Plan = "Free"
	PlanStarter    Plan = "Starter"
	PlanPro        Plan = "Pro"
	PlanEnterprise Plan = "Enterprise"
)

// Plans lists every subscription tier in ascending order.
var Plans = []Plan{PlanFree, PlanStarter, PlanPro, PlanEnterprise}

// PlanRank returns the position of p in the tier order, or -1 if p is not a
// known plan.
func PlanRank(p Plan) int {
	switch p {
	case PlanFree:
		return 0
	case PlanStarter:
		return 1
	case PlanPro:
		return 2
	case PlanEnterprise:
		return 3
	default:
		return -1
	}
}

// PlanAllows reports whether a user on plan user may access something that
// requires plan required. Unknown plans are never allowed and never grant access.
func PlanAllows(user, required Plan) bool {
	u, r := PlanRank(user), PlanRank(required)
	if u < 0 || r < 0 {
		return false
	}
	return u >= r
}

// ParsePlan resolves a plan name case-insensitively.
func ParsePlan(s string) (Plan, error) {
	for _, p := range Plans {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown plan %q (want one of Free, Starter, Pro, Enterprise)", s)
}

// Feature identifies a plan-gated product capability.
type Feature string

const (
	FeatureDiagnostic Feature = "diagnostic"
	FeatureAdvisor    Feature = "advisor"
	FeatureHistory    Feature = "history"
	FeatureScenarios  Feature = "scenarios"
	FeatureAPI        Feature = "api"
	FeatureMCP        Feature = "mcp"
)

// PlanTier is one row of the pricing table.
type PlanTier struct {
	Plan         Plan
	MonthlyPrice int
	Tagline      string
	Features     []Feature
}

// Includes reports whether the tier grants feature f.
func (t PlanTier) Includes(f Feature) bool {
	for _, have := range t.Features {
		if have == f {
			return true
		}
	}
	return false
}
