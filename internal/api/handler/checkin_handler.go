package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/incubadora/ponto-api/internal/api/metrics"
	apimiddleware "github.com/incubadora/ponto-api/internal/api/middleware"
	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// CheckinHandler handles POST /check.
type CheckinHandler struct {
	service ports.CheckinService
}

func NewCheckinHandler(service ports.CheckinService) *CheckinHandler {
	return &CheckinHandler{service: service}
}

// Check registers an attendance event for the authenticated user.
func (h *CheckinHandler) Check(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Check(c.Request().Context(), ports.CheckInput{
		CPF:      req.CPF,
		PIN:      req.PIN,
		Action:   req.Acao,
		OriginIP: apimiddleware.OriginIP(c),
	})
	if err != nil {
		metrics.CheckinErrorsTotal.WithLabelValues(checkinErrorReason(err)).Inc()
		return err
	}

	metrics.CheckinsTotal.WithLabelValues(result.Action).Inc()

	return c.JSON(http.StatusOK, checkResponse{
		OK:       true,
		Nome:     result.Nome,
		CPF:      result.CPF,
		Acao:     result.Action,
		DataHora: result.Timestamp.Format(time.RFC3339),
	})
}

func checkinErrorReason(err error) string {
	var alt *domain.AlternationError
	switch {
	case errors.As(err, &alt):
		return "alternation"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidPIN):
		return "invalid_pin"
	case errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidPINFormat),
		errors.Is(err, domain.ErrInvalidAction):
		return "validation"
	}
	return "internal"
}
