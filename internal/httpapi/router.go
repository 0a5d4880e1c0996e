// Package httpapi serves the diagnosis engine and catalog as a JSON API
// under /api/v1.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/gin-gonic/gin"
)

// Deps are the use cases the API exposes.
type Deps struct {
	Catalog  service.CatalogService
	Diagnose app.DiagnoseUseCase
	Advisor  app.AdvisorUseCase
}

// NewRouter builds the gin engine with middleware and routes registered.
func NewRouter(deps Deps, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	r := gin.New()
	r.Use(
		RequestID(),
		Logging(logger),
		Recovery(logger),
	)
	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, string(app.ErrNotFound), "no route for "+c.Request.URL.Path)
	})

	h := &handler{deps: deps}
	api := r.Group("/api/v1")
	api.GET("/health", h.health)
	api.GET("/tools", h.listTools)
	api.GET("/tools/:id", h.getTool)
	api.GET("/challenges", h.challenges)
	api.GET("/taxonomy", h.taxonomy)
	api.GET("/plans", h.plans)
	api.POST("/diagnose", h.diagnose)
	api.POST("/advisor", h.advisor)
	return r
}
