package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// CheckinService orchestrates a check-in: input normalization,
// directory lookup, PIN verification and the ledger write.
type CheckinService struct {
	directory ports.UserDirectory
	ledger    ports.LedgerRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewCheckinService(directory ports.UserDirectory, ledger ports.LedgerRepository, log zerolog.Logger) *CheckinService {
	return &CheckinService{
		directory: directory,
		ledger:    ledger,
		log:       log,
		now:       domain.NowBRT,
	}
}

// Check registers a single attendance event. The timestamp is captured
// here, in the fixed -03:00 offset, so the ledger always receives
// offset-aware times.
func (s *CheckinService) Check(ctx context.Context, input ports.CheckInput) (*ports.CheckResult, error) {
	cpf := domain.NormalizeDigits(input.CPF)
	if !domain.ValidCPF(cpf) {
		return nil, domain.ErrInvalidIdentifier
	}

	pin := domain.NormalizeDigits(strings.TrimSpace(input.PIN))
	if !domain.ValidPIN(pin) {
		return nil, domain.ErrInvalidPINFormat
	}

	action := domain.Action(input.Action)
	if !action.Valid() {
		return nil, domain.ErrInvalidAction
	}

	user, err := s.directory.Resolve(ctx, cpf)
	if err != nil {
		return nil, err
	}

	if err := s.directory.VerifyPIN(user, pin); err != nil {
		s.log.Warn().Str("cpf", cpf).Msg("PIN mismatch")
		return nil, err
	}

	event, err := s.ledger.Record(ctx, domain.AttendanceEvent{
		CPF:       cpf,
		Nome:      user.Nome,
		Action:    action,
		Timestamp: s.now(),
		OriginIP:  input.OriginIP,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("cpf", cpf).
		Str("acao", string(action)).
		Str("origin_ip", input.OriginIP).
		Msg("attendance event recorded")

	return &ports.CheckResult{
		Nome:      event.Nome,
		CPF:       event.CPF,
		Action:    string(event.Action),
		Timestamp: event.Timestamp,
	}, nil
}
