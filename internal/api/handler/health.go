package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe.
// Checks PostgreSQL connectivity and, when the roster directory is
// configured, that the roster file is still readable.
type ReadinessHandler struct {
	db         *gorm.DB
	rosterPath string // empty when the postgres directory serves
}

func NewReadinessHandler(db *gorm.DB, rosterPath string) *ReadinessHandler {
	return &ReadinessHandler{db: db, rosterPath: rosterPath}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil {
		deps["postgres"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else if err := sqlDB.PingContext(ctx); err != nil {
		deps["postgres"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["postgres"] = dependencyStatus{Status: "ok"}
	}

	if h.rosterPath != "" {
		if _, err := os.Stat(h.rosterPath); err != nil {
			deps["roster"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["roster"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

// Home handles GET / with a small banner listing the service endpoints.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"app": "Controle Presencial - Incubadora",
		"endpoints": map[string]string{
			"check":        "POST /check",
			"admin_create": "POST /admin/bolsistas (header X-Admin-Token)",
			"export_csv":   "GET /admin/export.csv?start=YYYY-MM-DD&end=YYYY-MM-DD (header X-Admin-Token)",
			"export_xlsx":  "GET /admin/export.xlsx?start=YYYY-MM-DD&end=YYYY-MM-DD (header X-Admin-Token)",
			"export_json":  "GET /admin/export.json?start=YYYY-MM-DD&end=YYYY-MM-DD (header X-Admin-Token)",
			"health":       "GET /health",
			"health_ready": "GET /health/ready",
		},
	})
}
