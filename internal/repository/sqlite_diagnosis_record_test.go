package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosisRecordRepo_CreateAndGetByID(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteWizardSessionRepo(database)
	repo := NewSQLiteDiagnosisRecordRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.WithSessionStatus(domain.SessionCompleted))
	require.NoError(t, sessions.Create(ctx, s))

	rec := testutil.NewTestRecord("growth-stagnation", testutil.WithRecordSession(s.ID))
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, s.ID, got.SessionID)
	assert.Equal(t, "growth-stagnation", got.ChallengeID)
	assert.Equal(t, domain.PlanFree, got.Plan)
	assert.Equal(t, 2.0, got.Maturity)
	assert.Equal(t, []string{"swot-analysis"}, got.ToolIDs)
	assert.Equal(t, rec.Result, got.Result)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestDiagnosisRecordRepo_WithoutSession(t *testing.T) {
	repo := NewSQLiteDiagnosisRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testutil.NewTestRecord("risk-resilience")
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SessionID)
}

func TestDiagnosisRecordRepo_UnknownSessionRejected(t *testing.T) {
	repo := NewSQLiteDiagnosisRecordRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), testutil.NewTestRecord("risk-resilience", testutil.WithRecordSession("ghost")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}

func TestDiagnosisRecordRepo_GetByID_Prefix(t *testing.T) {
	repo := NewSQLiteDiagnosisRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("a", testutil.WithRecordID("abc-111"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("b", testutil.WithRecordID("abc-222"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("c", testutil.WithRecordID("abc"))))

	got, err := repo.GetByID(ctx, "abc-2")
	require.NoError(t, err)
	assert.Equal(t, "abc-222", got.ID)

	got, err = repo.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID, "exact match wins over prefix matches")

	_, err = repo.GetByID(ctx, "abc-")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiagnosisRecordRepo_GetByID_PrefixIsLiteral(t *testing.T) {
	repo := NewSQLiteDiagnosisRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("a", testutil.WithRecordID("abc12345-0000"))))

	for _, id := range []string{"", "   ", "%", "_bc", "%345", "abc_", `abc\`} {
		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, "id %q", id)
	}

	got, err := repo.GetByID(ctx, "abc1")
	require.NoError(t, err)
	assert.Equal(t, "abc12345-0000", got.ID)
}

func TestDiagnosisRecordRepo_List_NewestFirstWithLimit(t *testing.T) {
	repo := NewSQLiteDiagnosisRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 4; i++ {
		rec := testutil.NewTestRecord("growth-stagnation",
			testutil.WithRecordCreatedAt(base.Add(time.Duration(i)*time.Millisecond)))
		require.NoError(t, repo.Create(ctx, rec))
		ids = append(ids, rec.ID)
	}

	list, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{ids[3], ids[2], ids[1]}, []string{list[0].ID, list[1].ID, list[2].ID})

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4, "non-positive limit falls back to the default")
}

func TestDiagnosisRecordRepo_ListBySession(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteWizardSessionRepo(database)
	repo := NewSQLiteDiagnosisRecordRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.WithSessionStatus(domain.SessionCompleted))
	require.NoError(t, sessions.Create(ctx, s))
	mine := testutil.NewTestRecord("growth-stagnation", testutil.WithRecordSession(s.ID))
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("growth-stagnation")))

	list, err := repo.ListBySession(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestDiagnosisRecordRepo_Delete(t *testing.T) {
	repo := NewSQLiteDiagnosisRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testutil.NewTestRecord("growth-stagnation")
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
}
