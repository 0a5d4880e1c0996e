// Package diagnosis turns wizard answers into a ranked tool recommendation.
// Everything here is pure: the same Request against the same Source always
// yields an identical result.
package diagnosis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
)

// ErrNarrativeMissing is returned when an urgency resolved from the catalog
// has no narrative text.
var ErrNarrativeMissing = errors.New("no narrative for urgency")

// Request carries one snapshot of wizard answers.
type Request struct {
	ChallengeID string
	UrgencyID   string
	ScopeID     string
	Answers     map[string]string
	Plan        domain.Plan
	// ChallengeIDs optionally lists every selected challenge. Categories of
	// the additional challenges widen the pool after the primary's own.
	ChallengeIDs []string
}

type Engine struct {
	src Source
}

func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Diagnose resolves the request against the catalog and assembles a result.
// Unknown challenge, urgency, or scope ids are wiring bugs and are returned as
// errors rather than defaulted.
func (e *Engine) Diagnose(req Request) (*domain.DiagnosisResult, error) {
	challenge, err := e.src.Challenge(req.ChallengeID)
	if err != nil {
		return nil, err
	}
	urgency, err := e.src.Urgency(req.UrgencyID)
	if err != nil {
		return nil, err
	}
	scope, err := e.src.Scope(req.ScopeID)
	if err != nil {
		return nil, err
	}

	challengeIDs := selectedChallengeIDs(req.ChallengeID, req.ChallengeIDs)
	related := append([]domain.ToolCategory(nil), challenge.RelatedCategories...)
	for _, id := range challengeIDs[1:] {
		extra, err := e.src.Challenge(id)
		if err != nil {
			return nil, err
		}
		for _, cat := range extra.RelatedCategories {
			if categoryIndex(related, cat) < 0 {
				related = append(related, cat)
			}
		}
	}

	approach, timeframe, ok := Narrative(urgency.ID)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNarrativeMissing, urgency.ID)
	}

	maturity := ScoreMaturity(e.src.Questions(), req.Answers)
	bracket := domain.ComplexityForMaturity(maturity)
	buckets := BucketTools(e.src.Tools(), related, req.Plan, bracket, urgency.ID)

	return &domain.DiagnosisResult{
		PrimaryChallenge:   challenge,
		ChallengeIDs:       challengeIDs,
		Urgency:            urgency,
		Scope:              scope,
		Plan:               req.Plan,
		OverallMaturity:    maturity,
		MaturityBracket:    bracket,
		RecommendedTools:   buckets.Recommended,
		QuickWins:          buckets.QuickWins,
		AdvancedTools:      buckets.Advanced,
		ScoredTools:        buckets.Ranked,
		SuggestedApproach:  approach,
		EstimatedTimeframe: timeframe,
		NextSteps:          NextSteps(challenge, urgency, scope, buckets),
	}, nil
}

// selectedChallengeIDs returns the primary id followed by the other selected
// ids, deduplicated, in selection order.
func selectedChallengeIDs(primary string, all []string) []string {
	out := []string{primary}
	seen := map[string]bool{primary: true}
	for _, id := range all {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// NextSteps builds the deterministic action list shown under a diagnosis.
func NextSteps(challenge domain.ChallengeCategory, urgency domain.UrgencyLevel, scope domain.ScopeLevel, b Buckets) []string {
	steps := make([]string, 0, 4)
	if len(b.Recommended) > 0 {
		steps = append(steps, fmt.Sprintf("Start with the %s to establish a baseline for %s", b.Recommended[0].Name, challenge.Title))
	} else {
		steps = append(steps, "Browse the tool catalog for a starting point; no tools matched this challenge on your plan")
	}
	steps = append(steps, fmt.Sprintf("Align %s stakeholders on the priorities this diagnosis surfaced", strings.ToLower(scope.Title)))
	if urgency.ID == domain.UrgencyCrisis {
		steps = append(steps, "Set up daily standups to track critical actions until the situation stabilizes")
	} else {
		steps = append(steps, "Schedule weekly check-ins to review progress and adjust course")
	}
	if len(b.QuickWins) > 0 {
		steps = append(steps, fmt.Sprintf("Bank an early win with the %s, then re-run this diagnostic", b.QuickWins[0].Name))
	} else {
		steps = append(steps, "Re-run this diagnostic once the first actions are complete")
	}
	return steps
}
