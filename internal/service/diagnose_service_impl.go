package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/diagnosis"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/google/uuid"
)

type diagnoseService struct {
	engine   *diagnosis.Engine
	catalog  *catalog.Catalog
	profiles ProfileService
	records  repository.DiagnosisRecordRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewDiagnoseService(
	engine *diagnosis.Engine,
	cat *catalog.Catalog,
	profiles ProfileService,
	records repository.DiagnosisRecordRepo,
	observers ...UseCaseObserver,
) DiagnoseService {
	return &diagnoseService{
		engine:   engine,
		catalog:  cat,
		profiles: profiles,
		records:  records,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *diagnoseService) Diagnose(ctx context.Context, req app.DiagnoseRequest) (resp *app.DiagnoseResponse, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"challenge": req.ChallengeID,
		"urgency":   req.UrgencyID,
		"scope":     req.ScopeID,
		"save":      req.Save,
	}
	defer func() { observeUseCase(ctx, s.observer, "diagnose", startedAt, fields, err) }()

	var plan domain.Plan
	plan, err = s.profiles.EffectivePlan(ctx, req.Plan)
	if err != nil {
		return nil, err
	}
	fields["plan"] = string(plan)
	if err = requireFeature(s.catalog, plan, domain.FeatureDiagnostic); err != nil {
		return nil, err
	}
	if req.Save {
		if err = requireFeature(s.catalog, plan, domain.FeatureHistory); err != nil {
			return nil, err
		}
	}

	if err = validateAnswers(s.catalog, req.Answers); err != nil {
		return nil, err
	}

	var result *domain.DiagnosisResult
	result, err = s.engine.Diagnose(diagnosis.Request{
		ChallengeID:  strings.TrimSpace(req.ChallengeID),
		UrgencyID:    strings.TrimSpace(req.UrgencyID),
		ScopeID:      strings.TrimSpace(req.ScopeID),
		Answers:      req.Answers,
		Plan:         plan,
		ChallengeIDs: req.AlsoChallengeIDs,
	})
	if err != nil {
		err = asDiagnoseError(err)
		return nil, err
	}
	fields["maturity"] = result.OverallMaturity
	fields["recommended_count"] = len(result.RecommendedTools)

	resp = &app.DiagnoseResponse{Result: result, GeneratedAt: startedAt}
	if !req.Save {
		return resp, nil
	}

	rec := recordFromResult(uuid.New().String(), "", result, startedAt)
	if err = s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	resp.RecordID = rec.ID
	return resp, nil
}

// validateAnswers rejects answers the wizard would also reject. Keys are
// checked in sorted order so the reported error is stable.
func validateAnswers(cat *catalog.Catalog, answers map[string]string) error {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, q := range keys {
		if err := cat.ValidateAnswer(q, answers[q]); err != nil {
			return asDiagnoseError(err)
		}
	}
	return nil
}
