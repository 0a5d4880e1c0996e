package domain

import "time"

type ReasonCode string

const (
	ReasonMaturityMatch       ReasonCode = "MATURITY_MATCH"
	ReasonCrisisIntro         ReasonCode = "CRISIS_INTRO"
	ReasonExploratoryAdvanced ReasonCode = "EXPLORATORY_ADVANCED"
	ReasonCategoryRelevance   ReasonCode = "CATEGORY_RELEVANCE"
)

type ScoreReason struct {
	Code    ReasonCode
	Message string
	Delta   int
}

// ScoredTool is a ranked tool with the factors that produced its score.
type ScoredTool struct {
	Tool    ToolRecord
	Score   int
	Reasons []ScoreReason
}

// DiagnosisResult is recomputed on demand from wizard answers; it has no
// identity of its own.
type DiagnosisResult struct {
	PrimaryChallenge   ChallengeCategory
	ChallengeIDs       []string
	Urgency            UrgencyLevel
	Scope              ScopeLevel
	Plan               Plan
	OverallMaturity    float64
	MaturityBracket    Complexity
	RecommendedTools   []ToolRecord
	QuickWins          []ToolRecord
	AdvancedTools      []ToolRecord
	ScoredTools        []ScoredTool
	SuggestedApproach  string
	EstimatedTimeframe string
	NextSteps          []string
}

// DiagnosisRecord is a persisted snapshot of a completed diagnosis.
type DiagnosisRecord struct {
	ID          string
	SessionID   string
	ChallengeID string
	UrgencyID   string
	ScopeID     string
	Plan        Plan
	Maturity    float64
	ToolIDs     []string
	Result      DiagnosisResult
	CreatedAt   time.Time
}
