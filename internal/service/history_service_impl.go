package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
)

type historyService struct {
	records  repository.DiagnosisRecordRepo
	catalog  *catalog.Catalog
	profiles ProfileService
	observer UseCaseObserver
}

func NewHistoryService(records repository.DiagnosisRecordRepo, cat *catalog.Catalog, profiles ProfileService, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		records:  records,
		catalog:  cat,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) List(ctx context.Context, req app.HistoryRequest) (records []*domain.DiagnosisRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"limit": req.Limit}
	defer func() { observeUseCase(ctx, s.observer, "history-list", startedAt, fields, err) }()

	if err = s.authorize(ctx); err != nil {
		return nil, err
	}
	records, err = s.records.List(ctx, req.Limit)
	fields["count"] = len(records)
	return records, err
}

func (s *historyService) Get(ctx context.Context, id string) (rec *domain.DiagnosisRecord, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observeUseCase(ctx, s.observer, "history-get", startedAt, map[string]any{"id": id}, err)
	}()

	if err = s.authorize(ctx); err != nil {
		return nil, err
	}
	rec, err = s.records.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.NotFoundError{Entity: "diagnosis", ID: id}
	}
	return rec, err
}

func (s *historyService) authorize(ctx context.Context) error {
	plan, err := s.profiles.EffectivePlan(ctx, nil)
	if err != nil {
		return err
	}
	return requireFeature(s.catalog, plan, domain.FeatureHistory)
}
