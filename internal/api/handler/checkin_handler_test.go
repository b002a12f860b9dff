package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCheckinService struct {
	result *ports.CheckResult
	err    error
	got    ports.CheckInput
}

func (s *stubCheckinService) Check(_ context.Context, input ports.CheckInput) (*ports.CheckResult, error) {
	s.got = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newCheckContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCheckinHandler_Check_OK(t *testing.T) {
	ts := time.Date(2025, 1, 5, 8, 30, 0, 0, domain.BRT)
	svc := &stubCheckinService{result: &ports.CheckResult{
		Nome: "Ana Silva", CPF: "12345678901", Action: "Entrada", Timestamp: ts,
	}}
	h := NewCheckinHandler(svc)

	c, rec, _ := newCheckContext(t, `{"cpf":"12345678901","pin":"1234","acao":"Entrada"}`)
	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true || resp["nome"] != "Ana Silva" || resp["acao"] != "Entrada" {
		t.Errorf("unexpected response: %v", resp)
	}
	if resp["data_hora"] != "2025-01-05T08:30:00-03:00" {
		t.Errorf("timestamp must carry the -03:00 offset, got %v", resp["data_hora"])
	}
}

func TestCheckinHandler_Check_InvalidAction(t *testing.T) {
	h := NewCheckinHandler(&stubCheckinService{})

	c, rec, e := newCheckContext(t, `{"cpf":"12345678901","pin":"1234","acao":"Almoço"}`)
	if err := h.Check(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckinHandler_Check_MissingFields(t *testing.T) {
	h := NewCheckinHandler(&stubCheckinService{})

	c, rec, e := newCheckContext(t, `{"cpf":"12345678901"}`)
	if err := h.Check(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckinHandler_Check_ServiceErrorPropagates(t *testing.T) {
	svc := &stubCheckinService{err: domain.ErrUserNotFound}
	h := NewCheckinHandler(svc)

	c, _, _ := newCheckContext(t, `{"cpf":"12345678901","pin":"1234","acao":"Entrada"}`)
	err := h.Check(c)
	if err == nil {
		t.Fatal("expected the service error to propagate to the error handler")
	}
}
