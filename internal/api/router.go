package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/incubadora/ponto-api/internal/api/handler"
	"github.com/incubadora/ponto-api/internal/api/middleware"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// Dependencies carries everything the router needs, built in main.
type Dependencies struct {
	Checkin ports.CheckinService
	Exports ports.ExportService
	Admin   ports.AdminService // nil when the roster directory is configured

	DB         *gorm.DB
	RosterPath string // empty when the postgres directory serves

	AdminToken string
	AllowedIPs []string

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ponto"))

	// --- Handlers ---
	checkinHandler := handler.NewCheckinHandler(deps.Checkin)
	adminHandler := handler.NewAdminHandler(deps.Exports, deps.Admin)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.RosterPath)

	// --- Public surface ---
	e.GET("/", handler.Home)
	e.POST("/check", checkinHandler.Check, middleware.IPAllowlist(deps.AllowedIPs))

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics scrape endpoint ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Admin surface (static shared token) ---
	admin := e.Group("/admin", middleware.AdminToken(deps.AdminToken))
	admin.POST("/bolsistas", adminHandler.CreateUser)
	admin.GET("/export.csv", adminHandler.ExportCSV)
	admin.GET("/export.xlsx", adminHandler.ExportXLSX)
	admin.GET("/export.json", adminHandler.ExportJSON)

	return e
}
