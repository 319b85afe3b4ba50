package apicontrollers

import (
	"net/http"

	"github.com/drujensen/aichat/internal/domain/interfaces"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HealthController struct {
	logger      *zap.Logger
	diagnostics interfaces.StoreDiagnostics
}

func NewHealthController(logger *zap.Logger, diagnostics interfaces.StoreDiagnostics) *HealthController {
	return &HealthController{
		logger:      logger,
		diagnostics: diagnostics,
	}
}

// RegisterRoutes registers the root banner plus the hello and health probes.
// The banner lives on the root mux, the probes under the /api group.
func (c *HealthController) RegisterRoutes(e *echo.Echo, api *echo.Group) {
	e.GET("/", c.Root)
	api.GET("/hello", c.Hello)
	api.GET("/health", c.Health)
}

// Root godoc
// @Summary Service banner
// @Description Confirms the backend is up.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Banner message"
// @Router / [get]
func (c *HealthController) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"message": "AI Chat Backend is running",
	})
}

// Hello godoc
// @Summary Hello probe
// @Description Simple reachability check for API clients.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Hello message"
// @Router /api/hello [get]
func (c *HealthController) Hello(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"message": "Hello from the backend API!",
	})
}

// Health godoc
// @Summary Health report
// @Description Reports storage backend connectivity and the collections it holds.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Health report"
// @Router /api/health [get]
func (c *HealthController) Health(ctx echo.Context) error {
	report := map[string]interface{}{
		"backend": "running",
		"storage": c.diagnostics.Kind(),
	}

	if err := c.diagnostics.Ping(ctx.Request().Context()); err != nil {
		c.logger.Warn("Storage ping failed", zap.Error(err))
		report["database"] = "unavailable"
		report["error"] = err.Error()
		return ctx.JSON(http.StatusOK, report)
	}
	report["database"] = "connected"

	collections, err := c.diagnostics.Collections(ctx.Request().Context())
	if err != nil {
		c.logger.Warn("Listing collections failed", zap.Error(err))
		report["error"] = err.Error()
		return ctx.JSON(http.StatusOK, report)
	}
	if collections == nil {
		collections = []string{}
	}
	report["collections"] = collections

	return ctx.JSON(http.StatusOK, report)
}
