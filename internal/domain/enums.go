package domain

type Complexity string

const (
	ComplexityIntro        Complexity = "Intro"
	ComplexityIntermediate Complexity = "Intermediate"
	ComplexityAdvanced     Complexity = "Advanced"
)

// ComplexityForMaturity maps a 1-4 maturity mean onto the tool complexity
// bracket it is ready for: <= 2 Intro, <= 3 Intermediate, above that Advanced.
func ComplexityForMaturity(maturity float64) Complexity {
	switch {
	case maturity <= 2:
		return ComplexityIntro
	case maturity <= 3:
		return ComplexityIntermediate
	default:
		return ComplexityAdvanced
	}
}

type ToolCategory string

const (
	CategoryGrowth         ToolCategory = "Growth"
	CategoryDiagnosis      ToolCategory = "Diagnosis"
	CategoryScenarios      ToolCategory = "Scenarios"
	CategoryCompetition    ToolCategory = "Competition"
	CategoryPositioning    ToolCategory = "Positioning"
	CategoryOperations     ToolCategory = "Operations"
	CategoryExecution      ToolCategory = "Execution"
	CategoryTransformation ToolCategory = "Transformation"
	CategoryStrategy       ToolCategory = "Strategy"
	CategoryInnovation     ToolCategory = "Innovation"
	CategoryRisk           ToolCategory = "Risk"
)

// ValidToolCategories is the canonical set of accepted tool categories.
var ValidToolCategories = map[ToolCategory]bool{
	CategoryGrowth: true, CategoryDiagnosis: true, CategoryScenarios: true,
	CategoryCompetition: true, CategoryPositioning: true, CategoryOperations: true,
	CategoryExecution: true, CategoryTransformation: true, CategoryStrategy: true,
	CategoryInnovation: true, CategoryRisk: true,
}

const (
	UrgencyCrisis      = "crisis"
	UrgencyUrgent      = "urgent"
	UrgencyImportant   = "important"
	UrgencyExploratory = "exploratory"
)

// UrgencyIDs lists every urgency id the narrative tables must cover.
var UrgencyIDs = []string{UrgencyCrisis, UrgencyUrgent, UrgencyImportant, UrgencyExploratory}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

type WizardStep string

const (
	StepChallenge  WizardStep = "challenge"
	StepUrgency    WizardStep = "urgency"
	StepScope      WizardStep = "scope"
	StepCapability WizardStep = "capability"
	StepReview     WizardStep = "review"
)
