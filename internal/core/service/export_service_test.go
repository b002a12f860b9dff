package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/export"
)

func seededLedger(t *testing.T) *stubLedger {
	t.Helper()
	ledger := &stubLedger{}

	events := []domain.AttendanceEvent{
		{CPF: "12345678901", Nome: "Ana Silva", Action: domain.ActionEntry,
			Timestamp: time.Date(2025, 1, 5, 8, 0, 0, 0, domain.BRT)},
		{CPF: "12345678901", Nome: "Ana Silva", Action: domain.ActionExit,
			Timestamp: time.Date(2025, 1, 5, 12, 0, 0, 0, domain.BRT)},
		// Exactly at the inclusive end boundary of 2025-01-05.
		{CPF: "22233344455", Nome: "Carla Dias", Action: domain.ActionEntry,
			Timestamp: time.Date(2025, 1, 5, 23, 59, 59, 0, domain.BRT)},
		// One second past the boundary: excluded from a 2025-01-05 export.
		{CPF: "22233344455", Nome: "Carla Dias", Action: domain.ActionExit,
			Timestamp: time.Date(2025, 1, 6, 0, 0, 0, 0, domain.BRT)},
	}
	for _, ev := range events {
		if _, err := ledger.Record(context.Background(), ev); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return ledger
}

func TestExportService_Export_CSV(t *testing.T) {
	svc := NewExportService(seededLedger(t), zerolog.Nop())

	file, err := svc.Export(context.Background(), "2025-01-05", "2025-01-05", "csv")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if file.Filename != "Ponto_Incubadora_2025-01-05_a_2025-01-05.csv" {
		t.Errorf("unexpected filename: %s", file.Filename)
	}
	if file.ContentType != "text/csv" {
		t.Errorf("unexpected content type: %s", file.ContentType)
	}

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	if len(lines) != 4 { // header + 3 rows inside the period
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), file.Content)
	}
	if !strings.Contains(lines[3], "23:59:59") {
		t.Errorf("boundary event at 23:59:59 must be included, rows:\n%s", file.Content)
	}
	if strings.Contains(string(file.Content), "06/01/2025") {
		t.Errorf("event one second past the boundary must be excluded")
	}
}

func TestExportService_Export_RowsAscending(t *testing.T) {
	svc := NewExportService(seededLedger(t), zerolog.Nop())

	file, err := svc.Export(context.Background(), "2025-01-01", "2025-01-31", "csv")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	idx8 := strings.Index(string(file.Content), "08:00:00")
	idx12 := strings.Index(string(file.Content), "12:00:00")
	if idx8 < 0 || idx12 < 0 || idx8 > idx12 {
		t.Errorf("rows not in ascending timestamp order:\n%s", file.Content)
	}
}

func TestExportService_Export_InvalidPeriod(t *testing.T) {
	svc := NewExportService(&stubLedger{}, zerolog.Nop())

	_, err := svc.Export(context.Background(), "2025-01-10", "2025-01-05", "csv")
	if !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got: %v", err)
	}

	_, err = svc.Export(context.Background(), "10/01/2025", "2025-01-20", "csv")
	if !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod for malformed date, got: %v", err)
	}
}

func TestExportService_Export_UnknownFormat(t *testing.T) {
	svc := NewExportService(&stubLedger{}, zerolog.Nop())

	_, err := svc.Export(context.Background(), "2025-01-05", "2025-01-05", "pdf")
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got: %v", err)
	}
}

func TestExportService_Export_XLSXFilename(t *testing.T) {
	svc := NewExportService(seededLedger(t), zerolog.Nop())

	file, err := svc.Export(context.Background(), "2025-01-01", "2025-01-31", "xlsx")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if file.Filename != "Ponto_Incubadora_2025-01-01_a_2025-01-31.xlsx" {
		t.Errorf("unexpected filename: %s", file.Filename)
	}
	if file.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", file.ContentType)
	}
}
