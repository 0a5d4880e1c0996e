package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/domain"
)

type catalogService struct {
	catalog  *catalog.Catalog
	profiles ProfileService
}

func NewCatalogService(cat *catalog.Catalog, profiles ProfileService) CatalogService {
	return &catalogService{catalog: cat, profiles: profiles}
}

func (s *catalogService) ListTools(ctx context.Context, f ToolFilter) ([]domain.ToolRecord, error) {
	var tools []domain.ToolRecord
	if f.All {
		tools = s.catalog.Tools()
	} else {
		plan, err := s.profiles.EffectivePlan(ctx, f.Plan)
		if err != nil {
			return nil, err
		}
		tools = s.catalog.ToolsFor(plan)
	}
	if f.Category == "" {
		return tools, nil
	}

	out := make([]domain.ToolRecord, 0, len(tools))
	for _, t := range tools {
		if strings.EqualFold(string(t.Category), string(f.Category)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *catalogService) GetTool(_ context.Context, id string) (domain.ToolRecord, error) {
	t, err := s.catalog.Tool(strings.TrimSpace(id))
	if err != nil {
		return domain.ToolRecord{}, asDiagnoseError(err)
	}
	return t, nil
}

func (s *catalogService) Challenges() []domain.ChallengeCategory { return s.catalog.Challenges() }
func (s *catalogService) Urgencies() []domain.UrgencyLevel       { return s.catalog.Urgencies() }
func (s *catalogService) Scopes() []domain.ScopeLevel            { return s.catalog.Scopes() }
func (s *catalogService) Questions() []domain.CapabilityQuestion { return s.catalog.Questions() }
func (s *catalogService) Plans() []domain.PlanTier               { return s.catalog.Plans() }

func (s *catalogService) RequireFeature(ctx context.Context, f domain.Feature) error {
	plan, err := s.profiles.EffectivePlan(ctx, nil)
	if err != nil {
		return err
	}
	return requireFeature(s.catalog, plan, f)
}
