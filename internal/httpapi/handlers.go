package httpapi

import (
	"net/http"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/gin-gonic/gin"
)

type handler struct {
	deps Deps
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// listTools returns the whole catalog unless ?plan= narrows it to the tools
// that plan can open.
func (h *handler) listTools(c *gin.Context) {
	filter := service.ToolFilter{
		Category: domain.ToolCategory(strings.TrimSpace(c.Query("category"))),
		All:      true,
	}
	if raw := c.Query("plan"); raw != "" {
		plan, ok := parsePlanParam(c, raw)
		if !ok {
			return
		}
		filter.Plan = plan
		filter.All = false
	}

	tools, err := h.deps.Catalog.ListTools(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": toToolDTOs(tools)})
}

func (h *handler) getTool(c *gin.Context) {
	tool, err := h.deps.Catalog.GetTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toToolDTO(tool))
}

func (h *handler) challenges(c *gin.Context) {
	challenges := h.deps.Catalog.Challenges()
	out := make([]challengeDTO, len(challenges))
	for i, ch := range challenges {
		out[i] = toChallengeDTO(ch)
	}
	c.JSON(http.StatusOK, gin.H{"challenges": out})
}

func (h *handler) taxonomy(c *gin.Context) {
	var out taxonomyDTO
	for _, u := range h.deps.Catalog.Urgencies() {
		out.Urgencies = append(out.Urgencies, toUrgencyDTO(u))
	}
	for _, s := range h.deps.Catalog.Scopes() {
		out.Scopes = append(out.Scopes, toScopeDTO(s))
	}
	for _, q := range h.deps.Catalog.Questions() {
		out.Questions = append(out.Questions, toQuestionDTO(q))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) plans(c *gin.Context) {
	tiers := h.deps.Catalog.Plans()
	out := make([]planDTO, len(tiers))
	for i, t := range tiers {
		out[i] = toPlanDTO(t)
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}

func (h *handler) diagnose(c *gin.Context) {
	var body diagnoseRequestDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	req := app.NewDiagnoseRequest(body.ChallengeID, body.UrgencyID, body.ScopeID)
	req.AlsoChallengeIDs = body.AlsoChallengeIDs
	req.Save = body.Save
	if body.Answers != nil {
		req.Answers = body.Answers
	}
	if body.Plan != "" {
		plan, ok := parsePlanParam(c, body.Plan)
		if !ok {
			return
		}
		req.Plan = plan
	}

	resp, err := h.deps.Diagnose.Diagnose(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDiagnoseResponseDTO(resp))
}

func (h *handler) advisor(c *gin.Context) {
	var body advisorRequestDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	req := app.AdvisorRequest{Message: body.Message, Industry: body.Industry}
	if body.Plan != "" {
		plan, ok := parsePlanParam(c, body.Plan)
		if !ok {
			return
		}
		req.Plan = plan
	}

	resp, err := h.deps.Advisor.Ask(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAdvisorResponseDTO(resp))
}

// parsePlanParam writes a 400 and reports false when raw is not a plan.
func parsePlanParam(c *gin.Context, raw string) (*domain.Plan, bool) {
	plan, err := domain.ParsePlan(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, string(app.ErrInvalidPlan), err.Error())
		return nil, false
	}
	return &plan, true
}
