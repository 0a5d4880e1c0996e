// Package catalog holds the static strategy-tool catalog and the
// challenge, urgency, scope, capability, and pricing taxonomies. The data is
// embedded YAML decoded once at startup; every value handed out is a copy.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/compass/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog is the read-only set of records the diagnosis engine works from.
type Catalog struct {
	tools      []domain.ToolRecord
	challenges []domain.ChallengeCategory
	urgencies  []domain.UrgencyLevel
	scopes     []domain.ScopeLevel
	questions  []domain.CapabilityQuestion
	plans      []domain.PlanTier
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. Embedded data that fails validation
// is a build defect, so Default panics instead of returning an error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes and validates the embedded catalog files.
func Load() (*Catalog, error) {
	files := make([][]byte, 0, 3)
	for _, name := range []string{"data/tools.yaml", "data/taxonomy.yaml", "data/plans.yaml"} {
		data, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		files = append(files, data)
	}
	return Parse(files[0], files[1], files[2])
}

// Parse builds a catalog from raw YAML documents laid out like the embedded
// data files.
func Parse(toolsYAML, taxonomyYAML, plansYAML []byte) (*Catalog, error) {
	var tools toolsFile
	var tax taxonomyFile
	var plans plansFile
	if err := yaml.Unmarshal(toolsYAML, &tools); err != nil {
		return nil, fmt.Errorf("parsing tools: %w", err)
	}
	if err := yaml.Unmarshal(taxonomyYAML, &tax); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	if err := yaml.Unmarshal(plansYAML, &plans); err != nil {
		return nil, fmt.Errorf("parsing plans: %w", err)
	}
	if errs := validateSchema(&tools, &tax, &plans); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return build(&tools, &tax, &plans), nil
}

func build(tools *toolsFile, tax *taxonomyFile, plans *plansFile) *Catalog {
	c := &Catalog{}
	for _, t := range tools.Tools {
		c.tools = append(c.tools, domain.ToolRecord{
			ID:           t.ID,
			Name:         t.Name,
			Category:     domain.ToolCategory(t.Category),
			Complexity:   domain.Complexity(t.Complexity),
			RequiredPlan: domain.Plan(t.RequiredPlan),
			Description:  t.Description,
			Duration:     t.Duration,
			Outputs:      t.Outputs,
			Tags:         t.Tags,
		})
	}
	for _, ch := range tax.Challenges {
		related := make([]domain.ToolCategory, len(ch.RelatedCategories))
		for i, rc := range ch.RelatedCategories {
			related[i] = domain.ToolCategory(rc)
		}
		c.challenges = append(c.challenges, domain.ChallengeCategory{
			ID:                ch.ID,
			Title:             ch.Title,
			Description:       ch.Description,
			RelatedCategories: related,
		})
	}
	for _, u := range tax.Urgencies {
		c.urgencies = append(c.urgencies, domain.UrgencyLevel(u))
	}
	for _, s := range tax.Scopes {
		c.scopes = append(c.scopes, domain.ScopeLevel(s))
	}
	for _, q := range tax.Questions {
		opts := make([]domain.CapabilityOption, len(q.Options))
		for i, o := range q.Options {
			opts[i] = domain.CapabilityOption(o)
		}
		c.questions = append(c.questions, domain.CapabilityQuestion{ID: q.ID, Prompt: q.Prompt, Options: opts})
	}
	for _, p := range plans.Plans {
		features := make([]domain.Feature, len(p.Features))
		for i, f := range p.Features {
			features[i] = domain.Feature(f)
		}
		c.plans = append(c.plans, domain.PlanTier{
			Plan:         domain.Plan(p.Plan),
			MonthlyPrice: p.MonthlyPrice,
			Tagline:      p.Tagline,
			Features:     features,
		})
	}
	return c
}

// Tools returns every tool in catalog order.
func (c *Catalog) Tools() []domain.ToolRecord {
	out := make([]domain.ToolRecord, len(c.tools))
	copy(out, c.tools)
	return out
}

// ToolsFor returns the tools a user on plan p may access, in catalog order.
func (c *Catalog) ToolsFor(p domain.Plan) []domain.ToolRecord {
	var out []domain.ToolRecord
	for _, t := range c.tools {
		if t.AccessibleOn(p) {
			out = append(out, t)
		}
	}
	return out
}

// ToolsByCategory returns the tools in category cat, in catalog order.
func (c *Catalog) ToolsByCategory(cat domain.ToolCategory) []domain.ToolRecord {
	var out []domain.ToolRecord
	for _, t := range c.tools {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) Tool(id string) (domain.ToolRecord, error) {
	for _, t := range c.tools {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.ToolRecord{}, &LookupError{Kind: "tool", ID: id}
}

func (c *Catalog) Challenges() []domain.ChallengeCategory {
	out := make([]domain.ChallengeCategory, len(c.challenges))
	copy(out, c.challenges)
	return out
}

func (c *Catalog) Challenge(id string) (domain.ChallengeCategory, error) {
	for _, ch := range c.challenges {
		if ch.ID == id {
			return ch, nil
		}
	}
	return domain.ChallengeCategory{}, &LookupError{Kind: "challenge", ID: id}
}

func (c *Catalog) Urgencies() []domain.UrgencyLevel {
	out := make([]domain.UrgencyLevel, len(c.urgencies))
	copy(out, c.urgencies)
	return out
}

func (c *Catalog) Urgency(id string) (domain.UrgencyLevel, error) {
	for _, u := range c.urgencies {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.UrgencyLevel{}, &LookupError{Kind: "urgency", ID: id}
}

func (c *Catalog) Scopes() []domain.ScopeLevel {
	out := make([]domain.ScopeLevel, len(c.scopes))
	copy(out, c.scopes)
	return out
}

func (c *Catalog) Scope(id string) (domain.ScopeLevel, error) {
	for _, s := range c.scopes {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.ScopeLevel{}, &LookupError{Kind: "scope", ID: id}
}

// Questions returns the capability questionnaire in display order.
func (c *Catalog) Questions() []domain.CapabilityQuestion {
	out := make([]domain.CapabilityQuestion, len(c.questions))
	copy(out, c.questions)
	return out
}

func (c *Catalog) Question(id string) (domain.CapabilityQuestion, error) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.CapabilityQuestion{}, &LookupError{Kind: "question", ID: id}
}

// ValidateAnswer checks that optionID is an option of questionID.
func (c *Catalog) ValidateAnswer(questionID, optionID string) error {
	q, err := c.Question(questionID)
	if err != nil {
		return err
	}
	if _, ok := q.OptionScore(optionID); !ok {
		return &LookupError{Kind: "option", ID: optionID}
	}
	return nil
}

// Plans returns the pricing table in ascending tier order.
func (c *Catalog) Plans() []domain.PlanTier {
	out := make([]domain.PlanTier, len(c.plans))
	copy(out, c.plans)
	return out
}

func (c *Catalog) PlanTier(p domain.Plan) (domain.PlanTier, error) {
	for _, t := range c.plans {
		if t.Plan == p {
			return t, nil
		}
	}
	return domain.PlanTier{}, &LookupError{Kind: "plan", ID: string(p)}
}

// HasFeature reports whether plan p unlocks feature f.
func (c *Catalog) HasFeature(p domain.Plan, f domain.Feature) bool {
	tier, err := c.PlanTier(p)
	if err != nil {
		return false
	}
	return tier.Includes(f)
}

// MinimumPlanFor returns the cheapest plan that unlocks f.
func (c *Catalog) MinimumPlanFor(f domain.Feature) (domain.Plan, bool) {
	for _, p := range domain.Plans {
		if c.HasFeature(p, f) {
			return p, true
		}
	}
	return "", false
}
