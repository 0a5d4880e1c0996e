// Package advisor answers free-text strategy questions with canned,
// keyword-selected guidance. There is no model behind it: a message is
// classified by weighted keyword hits and answered from a per-topic template
// pool, so replies are reproducible once the random source is pinned.
package advisor

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/alexanderramin/compass/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/advisor.yaml
var advisorYAML []byte

const (
	TopicGeneral = "general"
	maxTools     = 3
)

// ToolSource lists catalog tools by category. *catalog.Catalog satisfies it.
type ToolSource interface {
	ToolsByCategory(cat domain.ToolCategory) []domain.ToolRecord
}

type Topic struct {
	ID       string
	Category domain.ToolCategory
	Keywords map[string]int
	Replies  []string
}

// Question is one advisor request.
type Question struct {
	Message  string
	Plan     domain.Plan
	Industry string
}

// Reply is the advisor's answer to a Question.
type Reply struct {
	Topic string
	// Score is the summed keyword weight that selected Topic; zero means the
	// message matched nothing and fell back to general guidance.
	Score int
	Text  string
	Fact  string
	Tools []domain.ToolRecord
}

type Advisor struct {
	topics []Topic
	facts  map[string][]string
	upsell string
	tools  ToolSource
	rnd    RandSource
}

type advisorFile struct {
	Topics []struct {
		ID       string         `yaml:"id"`
		Category string         `yaml:"category"`
		Keywords map[string]int `yaml:"keywords"`
		Replies  []string       `yaml:"replies"`
	} `yaml:"topics"`
	IndustryFacts map[string][]string `yaml:"industry_facts"`
	Upsell        string              `yaml:"upsell"`
}

// New builds an advisor from the embedded topic data.
func New(tools ToolSource, rnd RandSource) (*Advisor, error) {
	return Parse(advisorYAML, tools, rnd)
}

// Parse builds an advisor from raw topic YAML.
func Parse(data []byte, tools ToolSource, rnd RandSource) (*Advisor, error) {
	var f advisorFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing advisor data: %w", err)
	}
	if rnd == nil {
		rnd = SystemRand()
	}
	a := &Advisor{
		facts:  map[string][]string{},
		upsell: strings.TrimSpace(f.Upsell),
		tools:  tools,
		rnd:    rnd,
	}
	hasGeneral := false
	for _, t := range f.Topics {
		if len(t.Replies) == 0 {
			return nil, fmt.Errorf("topic %q has no replies", t.ID)
		}
		cat := domain.ToolCategory(t.Category)
		if cat != "" && !domain.ValidToolCategories[cat] {
			return nil, fmt.Errorf("topic %q: unknown category %q", t.ID, t.Category)
		}
		kw := make(map[string]int, len(t.Keywords))
		for k, w := range t.Keywords {
			kw[normalize(k)] = w
		}
		a.topics = append(a.topics, Topic{ID: t.ID, Category: cat, Keywords: kw, Replies: t.Replies})
		if t.ID == TopicGeneral {
			hasGeneral = true
		}
	}
	if !hasGeneral {
		return nil, errors.New("advisor data has no general topic")
	}
	for industry, facts := range f.IndustryFacts {
		a.facts[normalizeIndustry(industry)] = facts
	}
	return a, nil
}

// Topics returns the topic ids in classification order.
func (a *Advisor) Topics() []string {
	ids := make([]string, len(a.topics))
	for i, t := range a.topics {
		ids[i] = t.ID
	}
	return ids
}

// Industries returns the industries that have facts, unordered.
func (a *Advisor) Industries() []string {
	out := make([]string, 0, len(a.facts))
	for k := range a.facts {
		out = append(out, k)
	}
	return out
}

// Upsell is the fixed reply for plans without the advisor feature.
func (a *Advisor) Upsell() string {
	return a.upsell
}

// Classify returns the topic with the highest keyword weight in message.
// Each keyword counts once. Ties go to the earlier topic; no hits yields the
// general topic with score zero.
func (a *Advisor) Classify(message string) (Topic, int) {
	text := " " + normalize(message) + " "
	best, bestScore := a.general(), 0
	for _, t := range a.topics {
		score := 0
		for kw, w := range t.Keywords {
			if strings.Contains(text, " "+kw+" ") {
				score += w
			}
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return best, bestScore
}

// Ask classifies the question and assembles a reply. Entitlement to the
// advisor itself is the caller's concern; Plan only filters suggested tools.
func (a *Advisor) Ask(q Question) Reply {
	topic, score := a.Classify(q.Message)
	reply := Reply{
		Topic: topic.ID,
		Score: score,
		Text:  topic.Replies[a.rnd.IntN(len(topic.Replies))],
	}
	if facts := a.facts[normalizeIndustry(q.Industry)]; len(facts) > 0 {
		reply.Fact = facts[a.rnd.IntN(len(facts))]
	}
	if a.tools != nil && topic.Category != "" {
		for _, t := range a.tools.ToolsByCategory(topic.Category) {
			if len(reply.Tools) == maxTools {
				break
			}
			if t.AccessibleOn(q.Plan) {
				reply.Tools = append(reply.Tools, t)
			}
		}
	}
	return reply
}

func (a *Advisor) general() Topic {
	for _, t := range a.topics {
		if t.ID == TopicGeneral {
			return t
		}
	}
	return Topic{}
}

func normalize(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, " ")
}

func normalizeIndustry(s string) string {
	return strings.ReplaceAll(normalize(s), " ", "-")
}
