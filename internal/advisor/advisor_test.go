package advisor

import (
	"testing"

	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdvisor(t *testing.T, rnd RandSource) *Advisor {
	t.Helper()
	a, err := New(catalog.Default(), rnd)
	require.NoError(t, err)
	return a
}

func ids(tools []domain.ToolRecord) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.ID
	}
	return out
}

func TestClassify(t *testing.T) {
	a := newTestAdvisor(t, FixedRand(0))

	tests := []struct {
		msg   string
		topic string
		score int
	}{
		{"How do we grow revenue in new markets?", "growth", 8},
		{"Our cost base is bloated and every process has a bottleneck", "operations", 7},
		{"We need a DIGITAL transformation of the operating model", "transformation", 9},
		{"What are the biggest risks if a recession hits?", "risk", 5},
		{"Should we raise our pricing?", "pricing", 3},
		{"hello there", TopicGeneral, 0},
		{"", TopicGeneral, 0},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			topic, score := a.Classify(tt.msg)
			assert.Equal(t, tt.topic, topic.ID)
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestClassify_TieGoesToEarlierTopic(t *testing.T) {
	a := newTestAdvisor(t, FixedRand(0))

	// competitors (3) and prices (3) tie; competition is listed first.
	topic, score := a.Classify("Our competitors keep cutting prices")
	assert.Equal(t, "competition", topic.ID)
	assert.Equal(t, 3, score)
}

func TestClassify_KeywordsMatchWholeWords(t *testing.T) {
	a := newTestAdvisor(t, FixedRand(0))

	// "overgrowth" must not hit "growth"; "said" must not hit "ai".
	topic, _ := a.Classify("she said the overgrowth was fine")
	assert.Equal(t, TopicGeneral, topic.ID)
}

func TestAsk_PinnedSource(t *testing.T) {
	a := newTestAdvisor(t, FixedRand(0))

	reply := a.Ask(Question{Message: "how can we grow?", Plan: domain.PlanFree, Industry: "Retail"})

	assert.Equal(t, "growth", reply.Topic)
	assert.Contains(t, reply.Text, "Growth stalls")
	assert.Contains(t, reply.Fact, "In retail")
	assert.Equal(t, []string{"growth-levers", "ansoff-matrix"}, ids(reply.Tools))
}

func TestAsk_ToolsFollowPlan(t *testing.T) {
	a := newTestAdvisor(t, FixedRand(1))

	reply := a.Ask(Question{Message: "growth", Plan: domain.PlanPro})

	assert.Equal(t, []string{"growth-levers", "ansoff-matrix", "market-sizing"}, ids(reply.Tools))
	assert.Contains(t, reply.Text, "growth you can buy")
	assert.Empty(t, reply.Fact)
}

func TestAsk_IndustryNormalized(t *testing.T) {
	a := newTestAdvisor(t, FixedRand(0))

	reply := a.Ask(Question{Message: "risk", Plan: domain.PlanFree, Industry: "Financial Services"})
	assert.Contains(t, reply.Fact, "financial services")
}

func TestAsk_SeededSourceIsReproducible(t *testing.T) {
	a1 := newTestAdvisor(t, SeededRand(99))
	a2 := newTestAdvisor(t, SeededRand(99))

	for _, msg := range []string{"growth", "risk", "pricing", "innovation ideas", "hi"} {
		q := Question{Message: msg, Plan: domain.PlanStarter, Industry: "technology"}
		assert.Equal(t, a1.Ask(q), a2.Ask(q), msg)
	}
}

func TestAsk_NoToolSource(t *testing.T) {
	a, err := New(nil, FixedRand(0))
	require.NoError(t, err)

	reply := a.Ask(Question{Message: "growth", Plan: domain.PlanEnterprise})
	assert.Equal(t, "growth", reply.Topic)
	assert.Empty(t, reply.Tools)
}

func TestUpsell(t *testing.T) {
	a := newTestAdvisor(t, nil)
	assert.Contains(t, a.Upsell(), "Starter plan")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", "topics: [", "parsing advisor data"},
		{"no general", "topics:\n  - id: growth\n    category: Growth\n    replies: [hi]\n", "no general topic"},
		{"unknown category", "topics:\n  - id: general\n    category: Astrology\n    replies: [hi]\n", `unknown category "Astrology"`},
		{"no replies", "topics:\n  - id: general\n    replies: []\n", `topic "general" has no replies`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), nil, FixedRand(0))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFixedRand_Clamps(t *testing.T) {
	assert.Equal(t, 2, FixedRand(9).IntN(3))
	assert.Equal(t, 0, FixedRand(-1).IntN(3))
	assert.Equal(t, 1, FixedRand(1).IntN(3))
}

func TestSeededRand_InRange(t *testing.T) {
	r := SeededRand(1)
	for i := 0; i < 100; i++ {
		v := r.IntN(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}
