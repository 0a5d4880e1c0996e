package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/advisor"
	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/domain"
)

type advisorService struct {
	advisor         *advisor.Advisor
	catalog         *catalog.Catalog
	profiles        ProfileService
	defaultIndustry string
	observer        UseCaseObserver
}

// NewAdvisorService answers advisor questions for plans that include the
// advisor feature. defaultIndustry applies when neither the request nor the
// profile names one.
func NewAdvisorService(
	adv *advisor.Advisor,
	cat *catalog.Catalog,
	profiles ProfileService,
	defaultIndustry string,
	observers ...UseCaseObserver,
) AdvisorService {
	return &advisorService{
		advisor:         adv,
		catalog:         cat,
		profiles:        profiles,
		defaultIndustry: defaultIndustry,
		observer:        useCaseObserverOrNoop(observers),
	}
}

func (s *advisorService) Ask(ctx context.Context, req app.AdvisorRequest) (resp *app.AdvisorResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"message_len": len(req.Message)}
	defer func() { observeUseCase(ctx, s.observer, "advisor-ask", startedAt, fields, err) }()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		err = &app.AdvisorError{Code: app.ErrEmptyMessage, Message: "message is empty"}
		return nil, err
	}

	var plan domain.Plan
	plan, err = s.profiles.EffectivePlan(ctx, req.Plan)
	if err != nil {
		return nil, err
	}
	fields["plan"] = string(plan)

	if !s.catalog.HasFeature(plan, domain.FeatureAdvisor) {
		required, _ := s.catalog.MinimumPlanFor(domain.FeatureAdvisor)
		fields["locked"] = true
		return &app.AdvisorResponse{
			Text:         s.advisor.Upsell(),
			Locked:       true,
			RequiredPlan: required,
		}, nil
	}

	industry := req.Industry
	if industry == "" {
		profile, perr := s.profiles.Get(ctx)
		if perr != nil {
			err = perr
			return nil, err
		}
		industry = profile.Industry
	}
	if industry == "" {
		industry = s.defaultIndustry
	}

	reply := s.advisor.Ask(advisor.Question{Message: message, Plan: plan, Industry: industry})
	fields["topic"] = reply.Topic
	fields["score"] = reply.Score
	return &app.AdvisorResponse{
		Topic: reply.Topic,
		Text:  reply.Text,
		Fact:  reply.Fact,
		Tools: reply.Tools,
	}, nil
}
