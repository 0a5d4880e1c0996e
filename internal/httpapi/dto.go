package httpapi

import (
	"time"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/domain"
)

type toolDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Complexity   string   `json:"complexity"`
	RequiredPlan string   `json:"required_plan"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Outputs      []string `json:"outputs"`
	Tags         []string `json:"tags"`
}

type challengeDTO struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	RelatedCategories []string `json:"related_categories"`
}

type urgencyDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

type scopeDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type optionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

type questionDTO struct {
	ID      string      `json:"id"`
	Prompt  string      `json:"prompt"`
	Options []optionDTO `json:"options"`
}

type taxonomyDTO struct {
	Urgencies []urgencyDTO  `json:"urgencies"`
	Scopes    []scopeDTO    `json:"scopes"`
	Questions []questionDTO `json:"questions"`
}

type planDTO struct {
	Plan         string   `json:"plan"`
	MonthlyPrice int      `json:"monthly_price"`
	Tagline      string   `json:"tagline"`
	Features     []string `json:"features"`
}

type diagnoseRequestDTO struct {
	ChallengeID      string            `json:"challenge_id" binding:"required"`
	AlsoChallengeIDs []string          `json:"also_challenge_ids"`
	UrgencyID        string            `json:"urgency_id" binding:"required"`
	ScopeID          string            `json:"scope_id" binding:"required"`
	Answers          map[string]string `json:"answers"`
	Plan             string            `json:"plan"`
	Save             bool              `json:"save"`
}

type reasonDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Delta   int    `json:"delta"`
}

type scoredToolDTO struct {
	ToolID  string      `json:"tool_id"`
	Score   int         `json:"score"`
	Reasons []reasonDTO `json:"reasons"`
}

type diagnosisDTO struct {
	PrimaryChallenge   challengeDTO    `json:"primary_challenge"`
	ChallengeIDs       []string        `json:"challenge_ids"`
	Urgency            urgencyDTO      `json:"urgency"`
	Scope              scopeDTO        `json:"scope"`
	Plan               string          `json:"plan"`
	OverallMaturity    float64         `json:"overall_maturity"`
	MaturityBracket    string          `json:"maturity_bracket"`
	RecommendedTools   []toolDTO       `json:"recommended_tools"`
	QuickWins          []toolDTO       `json:"quick_wins"`
	AdvancedTools      []toolDTO       `json:"advanced_tools"`
	ScoredTools        []scoredToolDTO `json:"scored_tools"`
	SuggestedApproach  string          `json:"suggested_approach"`
	EstimatedTimeframe string          `json:"estimated_timeframe"`
	NextSteps          []string        `json:"next_steps"`
}

type diagnoseResponseDTO struct {
	Result      diagnosisDTO `json:"result"`
	RecordID    string       `json:"record_id,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
}

type advisorRequestDTO struct {
	Message  string `json:"message" binding:"required"`
	Industry string `json:"industry"`
	Plan     string `json:"plan"`
}

type advisorResponseDTO struct {
	Topic        string    `json:"topic,omitempty"`
	Text         string    `json:"text"`
	Fact         string    `json:"fact,omitempty"`
	Tools        []toolDTO `json:"tools"`
	Locked       bool      `json:"locked"`
	RequiredPlan string    `json:"required_plan,omitempty"`
}

func toToolDTO(t domain.ToolRecord) toolDTO {
	return toolDTO{
		ID:           t.ID,
		Name:         t.Name,
		Category:     string(t.Category),
		Complexity:   string(t.Complexity),
		RequiredPlan: string(t.RequiredPlan),
		Description:  t.Description,
		Duration:     t.Duration,
		Outputs:      nonNil(t.Outputs),
		Tags:         nonNil(t.Tags),
	}
}

func toToolDTOs(tools []domain.ToolRecord) []toolDTO {
	out := make([]toolDTO, len(tools))
	for i, t := range tools {
		out[i] = toToolDTO(t)
	}
	return out
}

func toChallengeDTO(c domain.ChallengeCategory) challengeDTO {
	related := make([]string, len(c.RelatedCategories))
	for i, cat := range c.RelatedCategories {
		related[i] = string(cat)
	}
	return challengeDTO{ID: c.ID, Title: c.Title, Description: c.Description, RelatedCategories: related}
}

func toUrgencyDTO(u domain.UrgencyLevel) urgencyDTO {
	return urgencyDTO{ID: u.ID, Title: u.Title, Description: u.Description, Multiplier: u.Multiplier}
}

func toScopeDTO(s domain.ScopeLevel) scopeDTO {
	return scopeDTO{ID: s.ID, Title: s.Title, Description: s.Description}
}

func toQuestionDTO(q domain.CapabilityQuestion) questionDTO {
	opts := make([]optionDTO, len(q.Options))
	for i, o := range q.Options {
		opts[i] = optionDTO{ID: o.ID, Label: o.Label, Score: o.Score}
	}
	return questionDTO{ID: q.ID, Prompt: q.Prompt, Options: opts}
}

func toPlanDTO(t domain.PlanTier) planDTO {
	features := make([]string, len(t.Features))
	for i, f := range t.Features {
		features[i] = string(f)
	}
	return planDTO{Plan: string(t.Plan), MonthlyPrice: t.MonthlyPrice, Tagline: t.Tagline, Features: features}
}

func toDiagnosisDTO(r *domain.DiagnosisResult) diagnosisDTO {
	scored := make([]scoredToolDTO, len(r.ScoredTools))
	for i, st := range r.ScoredTools {
		reasons := make([]reasonDTO, len(st.Reasons))
		for j, reason := range st.Reasons {
			reasons[j] = reasonDTO{Code: string(reason.Code), Message: reason.Message, Delta: reason.Delta}
		}
		scored[i] = scoredToolDTO{ToolID: st.Tool.ID, Score: st.Score, Reasons: reasons}
	}
	return diagnosisDTO{
		PrimaryChallenge:   toChallengeDTO(r.PrimaryChallenge),
		ChallengeIDs:       nonNil(r.ChallengeIDs),
		Urgency:            toUrgencyDTO(r.Urgency),
		Scope:              toScopeDTO(r.Scope),
		Plan:               string(r.Plan),
		OverallMaturity:    r.OverallMaturity,
		MaturityBracket:    string(r.MaturityBracket),
		RecommendedTools:   toToolDTOs(r.RecommendedTools),
		QuickWins:          toToolDTOs(r.QuickWins),
		AdvancedTools:      toToolDTOs(r.AdvancedTools),
		ScoredTools:        scored,
		SuggestedApproach:  r.SuggestedApproach,
		EstimatedTimeframe: r.EstimatedTimeframe,
		NextSteps:          nonNil(r.NextSteps),
	}
}

func toDiagnoseResponseDTO(resp *app.DiagnoseResponse) diagnoseResponseDTO {
	return diagnoseResponseDTO{
		Result:      toDiagnosisDTO(resp.Result),
		RecordID:    resp.RecordID,
		GeneratedAt: resp.GeneratedAt,
	}
}

func toAdvisorResponseDTO(resp *app.AdvisorResponse) advisorResponseDTO {
	return advisorResponseDTO{
		Topic:        resp.Topic,
		Text:         resp.Text,
		Fact:         resp.Fact,
		Tools:        toToolDTOs(resp.Tools),
		Locked:       resp.Locked,
		RequiredPlan: string(resp.RequiredPlan),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
