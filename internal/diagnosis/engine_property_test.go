package diagnosis

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiagnose_Invariants_RandomRequests checks bucket sizes, entitlement,
// ordering, and determinism over random answer sets.
func TestDiagnose_Invariants_RandomRequests(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cat := catalog.Default()
	engine := NewEngine(cat)

	challenges := cat.Challenges()
	urgencies := cat.Urgencies()
	scopes := cat.Scopes()
	questions := cat.Questions()

	for trial := 0; trial < 300; trial++ {
		answers := map[string]string{}
		for _, q := range questions {
			switch rng.Intn(6) {
			case 0: // unanswered
			case 1:
				answers[q.ID] = "bogus"
			default:
				answers[q.ID] = q.Options[rng.Intn(len(q.Options))].ID
			}
		}
		var extra []string
		for i := rng.Intn(3); i > 0; i-- {
			extra = append(extra, challenges[rng.Intn(len(challenges))].ID)
		}
		req := Request{
			ChallengeID:  challenges[rng.Intn(len(challenges))].ID,
			UrgencyID:    urgencies[rng.Intn(len(urgencies))].ID,
			ScopeID:      scopes[rng.Intn(len(scopes))].ID,
			Answers:      answers,
			Plan:         domain.Plans[rng.Intn(len(domain.Plans))],
			ChallengeIDs: extra,
		}

		res, err := engine.Diagnose(req)
		require.NoError(t, err, "trial %d", trial)

		assert.GreaterOrEqual(t, res.OverallMaturity, 1.0, "trial %d", trial)
		assert.LessOrEqual(t, res.OverallMaturity, 4.0, "trial %d", trial)
		require.Len(t, res.RecommendedTools, min(5, len(res.ScoredTools)), "trial %d", trial)
		for i, tl := range res.RecommendedTools {
			assert.Equal(t, res.ScoredTools[i].Tool.ID, tl.ID, "trial %d: recommended[%d]", trial, i)
		}
		if len(extra) == 0 {
			ch, err := cat.Challenge(req.ChallengeID)
			require.NoError(t, err)
			pool := FilterByPlan(FilterByCategory(cat.Tools(), ch.RelatedCategories), req.Plan)
			assert.Len(t, res.ScoredTools, len(pool), "trial %d", trial)
		}
		assert.LessOrEqual(t, len(res.QuickWins), 3, "trial %d", trial)
		assert.LessOrEqual(t, len(res.AdvancedTools), 3, "trial %d", trial)

		for _, tl := range res.RecommendedTools {
			assert.True(t, domain.PlanAllows(req.Plan, tl.RequiredPlan),
				"trial %d: %s (%s) recommended on %s", trial, tl.ID, tl.RequiredPlan, req.Plan)
		}
		for _, tl := range res.QuickWins {
			assert.Equal(t, domain.ComplexityIntro, tl.Complexity, "trial %d", trial)
			assert.True(t, domain.PlanAllows(req.Plan, tl.RequiredPlan), "trial %d", trial)
		}
		for _, tl := range res.AdvancedTools {
			assert.True(t, tl.Complexity == domain.ComplexityAdvanced || tl.RequiredPlan != domain.PlanFree,
				"trial %d: %s is neither advanced nor paid", trial, tl.ID)
		}
		for i := 1; i < len(res.ScoredTools); i++ {
			assert.GreaterOrEqual(t, res.ScoredTools[i-1].Score, res.ScoredTools[i].Score,
				"trial %d: ranking not descending at %d", trial, i)
		}

		again, err := engine.Diagnose(req)
		require.NoError(t, err)
		if diff := cmp.Diff(res, again); diff != "" {
			t.Fatalf("trial %d: non-deterministic result:\n%s", trial, diff)
		}
	}
}

// TestDiagnose_UpgradingNeverShrinksPool checks that every tool
// reachable on a lower plan stays reachable on a higher one.
func TestDiagnose_UpgradingNeverShrinksPool(t *testing.T) {
	cat := catalog.Default()
	engine := NewEngine(cat)

	for _, ch := range cat.Challenges() {
		var prev map[string]bool
		for _, p := range domain.Plans {
			res, err := engine.Diagnose(Request{
				ChallengeID: ch.ID,
				UrgencyID:   domain.UrgencyImportant,
				ScopeID:     "function",
				Plan:        p,
			})
			require.NoError(t, err)

			pool := map[string]bool{}
			for _, st := range res.ScoredTools {
				pool[st.Tool.ID] = true
			}
			for id := range prev {
				assert.True(t, pool[id], "%s: %s lost when upgrading to %s", ch.ID, id, p)
			}
			prev = pool
		}
	}
}
