package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/diagnosis"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/google/uuid"
)

type wizardService struct {
	sessions repository.WizardSessionRepo
	catalog  *catalog.Catalog
	engine   *diagnosis.Engine
	profiles ProfileService
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewWizardService drives persisted wizard sessions. At most one session is
// active at a time; starting over abandons the previous one.
func NewWizardService(
	sessions repository.WizardSessionRepo,
	cat *catalog.Catalog,
	engine *diagnosis.Engine,
	profiles ProfileService,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) WizardService {
	return &wizardService{
		sessions: sessions,
		catalog:  cat,
		engine:   engine,
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start returns the active session, creating one if none exists. With
// restart set any active session is abandoned first.
func (s *wizardService) Start(ctx context.Context, restart bool) (session *domain.WizardSession, err error) {
	startedAt := s.now()
	fields := map[string]any{"restart": restart}
	defer func() { observeUseCase(ctx, s.observer, "wizard-start", startedAt, fields, err) }()

	var plan domain.Plan
	plan, err = s.profiles.EffectivePlan(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err = requireFeature(s.catalog, plan, domain.FeatureDiagnostic); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteWizardSessionRepo(tx)

		active, err := txSessions.GetActive(ctx)
		switch {
		case err == nil && !restart:
			session = active
			fields["resumed"] = true
			return nil
		case err == nil:
			active.Status = domain.SessionAbandoned
			active.UpdatedAt = startedAt
			if err := txSessions.Update(ctx, active); err != nil {
				return err
			}
			fields["abandoned"] = active.ID
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		session = &domain.WizardSession{
			ID:        uuid.New().String(),
			Status:    domain.SessionActive,
			Step:      domain.StepChallenge,
			Plan:      plan,
			Answers:   map[string]string{},
			CreatedAt: startedAt,
			UpdatedAt: startedAt,
		}
		return txSessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	fields["session"] = session.ID
	return session, nil
}

func (s *wizardService) Resume(ctx context.Context) (*domain.WizardSession, error) {
	session, err := s.sessions.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.WizardError{Code: app.ErrNoActiveSession, Message: "no wizard session in progress"}
	}
	return session, err
}

func (s *wizardService) SelectChallenges(ctx context.Context, sessionID string, challengeIDs []string) (*domain.WizardSession, error) {
	return s.edit(ctx, "wizard-challenges", sessionID, func(ws *domain.WizardSession) error {
		ids := make([]string, 0, len(challengeIDs))
		seen := map[string]bool{}
		for _, id := range challengeIDs {
			id = strings.TrimSpace(id)
			if id == "" || seen[id] {
				continue
			}
			if _, err := s.catalog.Challenge(id); err != nil {
				return asWizardError(err)
			}
			seen[id] = true
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			return &app.WizardError{Code: app.ErrUnknownChallenge, Message: "select at least one challenge"}
		}
		ws.ChallengeIDs = ids
		return nil
	})
}

func (s *wizardService) SetUrgency(ctx context.Context, sessionID, urgencyID string) (*domain.WizardSession, error) {
	return s.edit(ctx, "wizard-urgency", sessionID, func(ws *domain.WizardSession) error {
		u, err := s.catalog.Urgency(strings.TrimSpace(urgencyID))
		if err != nil {
			return asWizardError(err)
		}
		ws.UrgencyID = u.ID
		return nil
	})
}

func (s *wizardService) SetScope(ctx context.Context, sessionID, scopeID string) (*domain.WizardSession, error) {
	return s.edit(ctx, "wizard-scope", sessionID, func(ws *domain.WizardSession) error {
		sc, err := s.catalog.Scope(strings.TrimSpace(scopeID))
		if err != nil {
			return asWizardError(err)
		}
		ws.ScopeID = sc.ID
		return nil
	})
}

func (s *wizardService) Answer(ctx context.Context, sessionID, questionID, optionID string) (*domain.WizardSession, error) {
	return s.edit(ctx, "wizard-answer", sessionID, func(ws *domain.WizardSession) error {
		if err := s.catalog.ValidateAnswer(questionID, optionID); err != nil {
			return asWizardError(err)
		}
		if ws.Answers == nil {
			ws.Answers = map[string]string{}
		}
		ws.Answers[questionID] = optionID
		return nil
	})
}

// Complete diagnoses the session, stores the result, and closes the session
// in one transaction.
func (s *wizardService) Complete(ctx context.Context, sessionID string) (resp *app.DiagnoseResponse, err error) {
	startedAt := s.now()
	fields := map[string]any{"session": sessionID}
	defer func() { observeUseCase(ctx, s.observer, "wizard-complete", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteWizardSessionRepo(tx)
		txRecords := repository.NewSQLiteDiagnosisRecordRepo(tx)

		ws, err := s.loadOpen(ctx, txSessions, sessionID)
		if err != nil {
			return err
		}
		if missing := missingSteps(ws); len(missing) > 0 {
			return &app.WizardError{
				Code:    app.ErrIncompleteSession,
				Message: fmt.Sprintf("session %s has no %s yet", ws.ID, strings.Join(missing, ", ")),
			}
		}
		if err := requireFeature(s.catalog, ws.Plan, domain.FeatureDiagnostic); err != nil {
			return err
		}

		result, err := s.engine.Diagnose(diagnosis.Request{
			ChallengeID:  ws.PrimaryChallengeID(),
			UrgencyID:    ws.UrgencyID,
			ScopeID:      ws.ScopeID,
			Answers:      ws.Answers,
			Plan:         ws.Plan,
			ChallengeIDs: ws.ChallengeIDs,
		})
		if err != nil {
			return asWizardError(err)
		}

		rec := recordFromResult(uuid.New().String(), ws.ID, result, startedAt)
		if err := txRecords.Create(ctx, rec); err != nil {
			return err
		}

		ws.Status = domain.SessionCompleted
		ws.Step = domain.StepReview
		ws.UpdatedAt = startedAt
		completedAt := startedAt
		ws.CompletedAt = &completedAt
		if err := txSessions.Update(ctx, ws); err != nil {
			return err
		}

		resp = &app.DiagnoseResponse{Result: result, RecordID: rec.ID, GeneratedAt: startedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["record"] = resp.RecordID
	return resp, nil
}

func (s *wizardService) Reset(ctx context.Context, sessionID string) (err error) {
	startedAt := s.now()
	defer func() {
		observeUseCase(ctx, s.observer, "wizard-reset", startedAt, map[string]any{"session": sessionID}, err)
	}()

	var ws *domain.WizardSession
	ws, err = s.loadOpen(ctx, s.sessions, sessionID)
	if err != nil {
		return err
	}
	ws.Status = domain.SessionAbandoned
	ws.UpdatedAt = startedAt
	return s.sessions.Update(ctx, ws)
}

// edit applies one validated change to an open session and re-derives its
// step.
func (s *wizardService) edit(ctx context.Context, name, sessionID string, apply func(*domain.WizardSession) error) (ws *domain.WizardSession, err error) {
	startedAt := s.now()
	defer func() {
		observeUseCase(ctx, s.observer, name, startedAt, map[string]any{"session": sessionID}, err)
	}()

	ws, err = s.loadOpen(ctx, s.sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if err = apply(ws); err != nil {
		return nil, err
	}
	ws.Step = ws.NextStep(len(s.catalog.Questions()))
	ws.UpdatedAt = startedAt
	if err = s.sessions.Update(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *wizardService) loadOpen(ctx context.Context, sessions repository.WizardSessionRepo, sessionID string) (*domain.WizardSession, error) {
	ws, err := sessions.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.NotFoundError{Entity: "wizard session", ID: sessionID}
	}
	if err != nil {
		return nil, err
	}
	if !ws.IsOpen() {
		return nil, &app.WizardError{
			Code:    app.ErrSessionClosed,
			Message: fmt.Sprintf("session %s is %s", ws.ID, ws.Status),
		}
	}
	return ws, nil
}

// missingSteps lists the required selections a session still lacks.
// Capability answers are optional; unanswered questions score as developing.
func missingSteps(ws *domain.WizardSession) []string {
	var missing []string
	if len(ws.ChallengeIDs) == 0 {
		missing = append(missing, "challenge")
	}
	if ws.UrgencyID == "" {
		missing = append(missing, "urgency")
	}
	if ws.ScopeID == "" {
		missing = append(missing, "scope")
	}
	return missing
}
