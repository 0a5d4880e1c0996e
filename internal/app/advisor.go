package app

import "github.com/alexanderramin/compass/internal/domain"

type AdvisorRequest struct {
	Message string
	// Industry overrides the profile industry when non-empty.
	Industry string
	Plan     *domain.Plan
}

type AdvisorResponse struct {
	Topic string
	Text  string
	Fact  string
	Tools []domain.ToolRecord
	// Locked is true when the plan lacks the advisor and Text is the upsell.
	Locked       bool
	RequiredPlan domain.Plan
}
