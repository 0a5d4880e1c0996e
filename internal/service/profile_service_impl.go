package service

import (
	"context"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
	override *domain.Plan
	observer UseCaseObserver
}

// NewProfileService serves the single local user profile. A non-nil
// override replaces the stored plan in EffectivePlan.
func NewProfileService(profiles repository.UserProfileRepo, override *domain.Plan, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		override: override,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) SetPlan(ctx context.Context, plan domain.Plan) (profile *domain.UserProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan": string(plan)}
	defer func() { observeUseCase(ctx, s.observer, "set-plan", startedAt, fields, err) }()

	if err = validatePlan(plan); err != nil {
		return nil, err
	}
	profile, err = s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	fields["previous_plan"] = string(profile.Plan)
	profile.Plan = plan
	if err = s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, p *domain.UserProfile) (err error) {
	startedAt := time.Now().UTC()
	defer func() { observeUseCase(ctx, s.observer, "update-profile", startedAt, nil, err) }()

	if err = validatePlan(p.Plan); err != nil {
		return err
	}
	return s.profiles.Upsert(ctx, p)
}

func (s *profileService) EffectivePlan(ctx context.Context, requested *domain.Plan) (domain.Plan, error) {
	if requested != nil {
		if err := validatePlan(*requested); err != nil {
			return "", err
		}
		return *requested, nil
	}
	if s.override != nil {
		return *s.override, nil
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return "", err
	}
	return profile.Plan, nil
}
