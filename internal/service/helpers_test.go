package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/compass/internal/advisor"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/diagnosis"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/require"
)

type harness struct {
	db       *sql.DB
	uow      db.UnitOfWork
	catalog  *catalog.Catalog
	engine   *diagnosis.Engine
	sessions *repository.SQLiteWizardSessionRepo
	records  *repository.SQLiteDiagnosisRecordRepo
	profiles *repository.SQLiteUserProfileRepo
	profile  ProfileService
	observer *recordingObserver
}

// newHarness wires services over a fresh in-memory database with the stored
// profile on plan.
func newHarness(t *testing.T, plan domain.Plan) *harness {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := catalog.Default()
	h := &harness{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		catalog:  cat,
		engine:   diagnosis.NewEngine(cat),
		sessions: repository.NewSQLiteWizardSessionRepo(database),
		records:  repository.NewSQLiteDiagnosisRecordRepo(database),
		profiles: repository.NewSQLiteUserProfileRepo(database),
		observer: &recordingObserver{},
	}
	require.NoError(t, h.profiles.Upsert(context.Background(), &domain.UserProfile{ID: "default", Plan: plan}))
	h.profile = NewProfileService(h.profiles, nil, h.observer)
	return h
}

func (h *harness) diagnose() DiagnoseService {
	return NewDiagnoseService(h.engine, h.catalog, h.profile, h.records, h.observer)
}

func (h *harness) history() HistoryService {
	return NewHistoryService(h.records, h.catalog, h.profile, h.observer)
}

func (h *harness) wizard() WizardService {
	return NewWizardService(h.sessions, h.catalog, h.engine, h.profile, h.uow, h.observer)
}

func (h *harness) advisor(t *testing.T, defaultIndustry string) AdvisorService {
	t.Helper()
	adv, err := advisor.New(h.catalog, advisor.FixedRand(0))
	require.NoError(t, err)
	return NewAdvisorService(adv, h.catalog, h.profile, defaultIndustry, h.observer)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events, "expected at least one observed use case")
	return o.events[len(o.events)-1]
}

func planPtr(p domain.Plan) *domain.Plan { return &p }

func recordIDs(records []*domain.DiagnosisRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
