package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/export"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// ExportService runs the admin export pipeline: period parsing, ledger
// query and serialization.
type ExportService struct {
	ledger ports.LedgerRepository
	log    zerolog.Logger
}

func NewExportService(ledger ports.LedgerRepository, log zerolog.Logger) *ExportService {
	return &ExportService{ledger: ledger, log: log}
}

func (s *ExportService) Export(ctx context.Context, start, end, format string) (*ports.ExportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriod(start, end)
	if err != nil {
		return nil, err
	}

	events, err := s.ledger.Query(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("export query: %w", err)
	}

	content, err := export.Render(f, events)
	if err != nil {
		return nil, fmt.Errorf("export render: %w", err)
	}

	s.log.Info().
		Str("format", format).
		Str("start", start).
		Str("end", end).
		Int("rows", len(events)).
		Msg("export generated")

	return &ports.ExportFile{
		// The filename embeds the literal date strings from the request.
		Filename:    fmt.Sprintf("Ponto_Incubadora_%s_a_%s.%s", start, end, f.Extension()),
		ContentType: f.ContentType(),
		Content:     content,
	}, nil
}
