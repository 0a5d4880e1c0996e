package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/compass/internal/advisor"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/diagnosis"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

// newTestRouter wires real services over an in-memory database with the
// stored profile on plan. Logs go to logBuf when it is non-nil.
func newTestRouter(t *testing.T, plan domain.Plan, logBuf *bytes.Buffer) *gin.Engine {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := catalog.Default()

	profiles := repository.NewSQLiteUserProfileRepo(database)
	require.NoError(t, profiles.Upsert(context.Background(), &domain.UserProfile{Plan: plan}))
	profileSvc := service.NewProfileService(profiles, nil)

	adv, err := advisor.New(cat, advisor.FixedRand(0))
	require.NoError(t, err)

	var w io.Writer = io.Discard
	if logBuf != nil {
		w = logBuf
	}
	return NewRouter(Deps{
		Catalog:  service.NewCatalogService(cat, profileSvc),
		Diagnose: service.NewDiagnoseService(diagnosis.NewEngine(cat), cat, profileSvc, repository.NewSQLiteDiagnosisRecordRepo(database)),
		Advisor:  service.NewAdvisorService(adv, cat, profileSvc, ""),
	}, slog.New(slog.NewTextHandler(w, nil)))
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) errorBody {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[errorResponse](t, rec)
	assert.Equal(t, code, body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
	return body.Error
}

func TestHealth_EchoesRequestID(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestLogging_OneLinePerRequest(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRouter(t, domain.PlanFree, &logs)

	rec := do(t, r, http.MethodGet, "/api/v1/tools/crystal-ball", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	out := logs.String()
	assert.Equal(t, 1, strings.Count(out, "request.complete"))
	assert.Contains(t, out, "request_id="+rec.Header().Get("X-Request-Id"))
	assert.Contains(t, out, "path=/api/v1/tools/crystal-ball")
	assert.Contains(t, out, "status=400")
	assert.Contains(t, out, "error_code=UNKNOWN_TOOL")
}

func TestListTools(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)

	all := decode[map[string][]toolDTO](t, do(t, r, http.MethodGet, "/api/v1/tools", ""))
	assert.Len(t, all["tools"], len(catalog.Default().Tools()))

	starterGrowth := decode[map[string][]toolDTO](t, do(t, r, http.MethodGet, "/api/v1/tools?plan=starter&category=Growth", ""))
	var ids []string
	for _, tool := range starterGrowth["tools"] {
		ids = append(ids, tool.ID)
	}
	assert.Equal(t, []string{"growth-levers", "ansoff-matrix", "market-sizing"}, ids)

	assertErrorBody(t, do(t, r, http.MethodGet, "/api/v1/tools?plan=gold", ""), http.StatusBadRequest, "INVALID_PLAN")
}

func TestGetTool(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)

	rec := do(t, r, http.MethodGet, "/api/v1/tools/swot-analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tool := decode[toolDTO](t, rec)
	assert.Equal(t, "swot-analysis", tool.ID)
	assert.Equal(t, "Free", tool.RequiredPlan)

	body := assertErrorBody(t, do(t, r, http.MethodGet, "/api/v1/tools/crystal-ball", ""), http.StatusBadRequest, "UNKNOWN_TOOL")
	assert.Equal(t, `unknown tool "crystal-ball"`, body.Message)
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)

	challenges := decode[map[string][]challengeDTO](t, do(t, r, http.MethodGet, "/api/v1/challenges", ""))
	require.Len(t, challenges["challenges"], 7)
	assert.Equal(t, "growth-stagnation", challenges["challenges"][0].ID)

	tax := decode[taxonomyDTO](t, do(t, r, http.MethodGet, "/api/v1/taxonomy", ""))
	assert.Len(t, tax.Urgencies, 4)
	assert.Len(t, tax.Scopes, 4)
	assert.Len(t, tax.Questions, 4)

	plans := decode[map[string][]planDTO](t, do(t, r, http.MethodGet, "/api/v1/plans", ""))
	require.Len(t, plans["plans"], 4)
	assert.Equal(t, []string{"diagnostic"}, plans["plans"][0].Features)
}

func TestDiagnose(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)

	rec := do(t, r, http.MethodPost, "/api/v1/diagnose", `{
		"challenge_id": "growth-stagnation",
		"urgency_id": "important",
		"scope_id": "function",
		"answers": {"strategy-clarity": "developing", "data-maturity": "developing",
			"execution-discipline": "developing", "change-readiness": "developing"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[diagnoseResponseDTO](t, rec)
	assert.Empty(t, resp.RecordID)
	assert.Equal(t, "Free", resp.Result.Plan)
	assert.Equal(t, "Intro", resp.Result.MaturityBracket)
	var ids []string
	for _, tool := range resp.Result.RecommendedTools {
		ids = append(ids, tool.ID)
	}
	assert.Equal(t, []string{"growth-levers", "ansoff-matrix", "swot-analysis", "root-cause", "scenario-canvas"}, ids)
	require.NotEmpty(t, resp.Result.ScoredTools)
	assert.Equal(t, "growth-levers", resp.Result.ScoredTools[0].ToolID)
	assert.Equal(t, 6, resp.Result.ScoredTools[0].Score)
	assert.Len(t, resp.Result.NextSteps, 4)
}

func TestDiagnose_Errors(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed", `{`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing urgency", `{"challenge_id":"growth-stagnation","scope_id":"function"}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown urgency", `{"challenge_id":"growth-stagnation","urgency_id":"someday","scope_id":"function"}`, http.StatusBadRequest, "UNKNOWN_URGENCY"},
		{"unknown challenge", `{"challenge_id":"boredom","urgency_id":"crisis","scope_id":"function"}`, http.StatusBadRequest, "UNKNOWN_CHALLENGE"},
		{"unknown option", `{"challenge_id":"growth-stagnation","urgency_id":"crisis","scope_id":"function","answers":{"data-maturity":"expert"}}`, http.StatusBadRequest, "UNKNOWN_OPTION"},
		{"bad plan", `{"challenge_id":"growth-stagnation","urgency_id":"crisis","scope_id":"function","plan":"gold"}`, http.StatusBadRequest, "INVALID_PLAN"},
		{"save on free", `{"challenge_id":"growth-stagnation","urgency_id":"crisis","scope_id":"function","save":true}`, http.StatusForbidden, "FEATURE_LOCKED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertErrorBody(t, do(t, r, http.MethodPost, "/api/v1/diagnose", tt.body), tt.status, tt.code)
		})
	}
}

func TestDiagnose_SaveOnStarter(t *testing.T) {
	r := newTestRouter(t, domain.PlanStarter, nil)

	rec := do(t, r, http.MethodPost, "/api/v1/diagnose",
		`{"challenge_id":"risk-resilience","urgency_id":"crisis","scope_id":"enterprise","save":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[diagnoseResponseDTO](t, rec).RecordID)
}

func TestAdvisor(t *testing.T) {
	free := newTestRouter(t, domain.PlanFree, nil)
	rec := do(t, free, http.MethodPost, "/api/v1/advisor", `{"message":"How do we grow revenue?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	locked := decode[advisorResponseDTO](t, rec)
	assert.True(t, locked.Locked)
	assert.Equal(t, "Starter", locked.RequiredPlan)
	assert.Empty(t, locked.Tools)

	rec = do(t, free, http.MethodPost, "/api/v1/advisor", `{"message":"How do we grow revenue?","plan":"pro","industry":"retail"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	answer := decode[advisorResponseDTO](t, rec)
	assert.False(t, answer.Locked)
	assert.Equal(t, "growth", answer.Topic)
	assert.NotEmpty(t, answer.Fact)
	assert.Len(t, answer.Tools, 3)

	assertErrorBody(t, do(t, free, http.MethodPost, "/api/v1/advisor", `{"message":"  ","plan":"pro"}`), http.StatusBadRequest, "EMPTY_MESSAGE")
	assertErrorBody(t, do(t, free, http.MethodPost, "/api/v1/advisor", `{}`), http.StatusBadRequest, "INVALID_REQUEST")
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t, domain.PlanFree, nil)
	assertErrorBody(t, do(t, r, http.MethodGet, "/api/v2/tools", ""), http.StatusNotFound, "NOT_FOUND")
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	r := gin.New()
	r.Use(RequestID(), Logging(logger), Recovery(logger))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	body := assertErrorBody(t, do(t, r, http.MethodGet, "/boom", ""), http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.Equal(t, "Unexpected server error", body.Message)
	assert.Contains(t, logs.String(), "kaboom")
	assert.Contains(t, logs.String(), "level=ERROR")
}
