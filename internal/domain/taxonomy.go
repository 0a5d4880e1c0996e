package domain

type ChallengeCategory struct {
	ID                string
	Title             string
	Description       string
	RelatedCategories []ToolCategory
}

// CategoryIndex returns the position of c in RelatedCategories, or -1.
func (c ChallengeCategory) CategoryIndex(cat ToolCategory) int {
	for i, rc := range c.RelatedCategories {
		if rc == cat {
			return i
		}
	}
	return -1
}

type UrgencyLevel struct {
	ID          string
	Title       string
	Description string
	// Multiplier is informational only; scoring keys off ID.
	Multiplier float64
}

type ScopeLevel struct {
	ID          string
	Title       string
	Description string
}

type CapabilityOption struct {
	ID    string
	Label string
	Score int
}

type CapabilityQuestion struct {
	ID      string
	Prompt  string
	Options []CapabilityOption
}

// OptionScore returns the score of optionID and whether it was found.
func (q CapabilityQuestion) OptionScore(optionID string) (int, bool) {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o.Score, true
		}
	}
	return 0, false
}
