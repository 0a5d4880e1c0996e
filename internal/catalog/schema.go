package catalog

// toolsFile is the YAML layout of data/tools.yaml.
type toolsFile struct {
	Tools []ToolConfig `yaml:"tools"`
}

type ToolConfig struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	Complexity   string   `yaml:"complexity"`
	RequiredPlan string   `yaml:"required_plan"`
	Duration     string   `yaml:"duration,omitempty"`
	Description  string   `yaml:"description"`
	Outputs      []string `yaml:"outputs,omitempty"`
	Tags         []string `yaml:"tags,omitempty"`
}

// taxonomyFile is the YAML layout of data/taxonomy.yaml.
type taxonomyFile struct {
	Challenges []ChallengeConfig `yaml:"challenges"`
	Urgencies  []UrgencyConfig   `yaml:"urgencies"`
	Scopes     []ScopeConfig     `yaml:"scopes"`
	Questions  []QuestionConfig  `yaml:"questions"`
}

type ChallengeConfig struct {
	ID                string   `yaml:"id"`
	Title             string   `yaml:"title"`
	Description       string   `yaml:"description"`
	RelatedCategories []string `yaml:"related_categories"`
}

type UrgencyConfig struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Multiplier  float64 `yaml:"multiplier"`
}

type ScopeConfig struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type QuestionConfig struct {
	ID      string         `yaml:"id"`
	Prompt  string         `yaml:"prompt"`
	Options []OptionConfig `yaml:"options"`
}

type OptionConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Score int    `yaml:"score"`
}

// plansFile is the YAML layout of data/plans.yaml.
type plansFile struct {
	Plans []PlanConfig `yaml:"plans"`
}

type PlanConfig struct {
	Plan         string   `yaml:"plan"`
	MonthlyPrice int      `yaml:"monthly_price"`
	Tagline      string   `yaml:"tagline"`
	Features     []string `yaml:"features"`
}
