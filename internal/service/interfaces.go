package service

import (
	"context"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/domain"
)

// ToolFilter narrows a catalog listing. With All unset the listing is limited
// to tools accessible on Plan, or on the profile plan when Plan is nil.
type ToolFilter struct {
	Category domain.ToolCategory
	Plan     *domain.Plan
	All      bool
}

type CatalogService interface {
	ListTools(ctx context.Context, f ToolFilter) ([]domain.ToolRecord, error)
	GetTool(ctx context.Context, id string) (domain.ToolRecord, error)
	Challenges() []domain.ChallengeCategory
	Urgencies() []domain.UrgencyLevel
	Scopes() []domain.ScopeLevel
	Questions() []domain.CapabilityQuestion
	Plans() []domain.PlanTier
	// RequireFeature fails with a FeatureLockedError when the effective
	// plan does not include f.
	RequireFeature(ctx context.Context, f domain.Feature) error
}

type ProfileService interface {
	app.ProfileUseCase
	// EffectivePlan resolves the plan a request runs under: requested when
	// set, then the configured override, then the stored profile plan.
	EffectivePlan(ctx context.Context, requested *domain.Plan) (domain.Plan, error)
}

type DiagnoseService interface {
	app.DiagnoseUseCase
}

type HistoryService interface {
	app.HistoryUseCase
}

type AdvisorService interface {
	app.AdvisorUseCase
}

type WizardService interface {
	app.WizardUseCase
}
