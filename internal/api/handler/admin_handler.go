package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/incubadora/ponto-api/internal/api/metrics"
	"github.com/incubadora/ponto-api/internal/core/export"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// AdminHandler serves the token-guarded /admin surface: user creation
// (store-backed directory only) and period exports.
type AdminHandler struct {
	exports ports.ExportService
	users   ports.AdminService // nil when the roster directory is configured
}

func NewAdminHandler(exports ports.ExportService, users ports.AdminService) *AdminHandler {
	return &AdminHandler{exports: exports, users: users}
}

// CreateUser handles POST /admin/bolsistas.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	if h.users == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user administration is unavailable with the roster backend")
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	result, err := h.users.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Nome:  req.Nome,
		CPF:   req.CPF,
		PIN:   req.PIN,
		Ativo: ativo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{OK: true, ID: result.ID, Nome: result.Nome})
}

// ExportCSV handles GET /admin/export.csv.
func (h *AdminHandler) ExportCSV(c echo.Context) error {
	return h.export(c, export.FormatCSV)
}

// ExportXLSX handles GET /admin/export.xlsx.
func (h *AdminHandler) ExportXLSX(c echo.Context) error {
	return h.export(c, export.FormatXLSX)
}

// ExportJSON handles GET /admin/export.json.
func (h *AdminHandler) ExportJSON(c echo.Context) error {
	return h.export(c, export.FormatJSON)
}

func (h *AdminHandler) export(c echo.Context, format export.Format) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")

	began := time.Now()
	file, err := h.exports.Export(c.Request().Context(), start, end, string(format))
	if err != nil {
		return err
	}

	metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	metrics.ExportDuration.WithLabelValues(string(format)).Observe(time.Since(began).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Content)
}
