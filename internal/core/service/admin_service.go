package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// AdminService creates users in the store-backed directory. It is only
// wired when the postgres directory is configured; the roster variant
// is edited directly in its file.
type AdminService struct {
	store ports.UserStore
	log   zerolog.Logger
}

func NewAdminService(store ports.UserStore, log zerolog.Logger) *AdminService {
	return &AdminService{store: store, log: log}
}

func (s *AdminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*ports.CreateUserResult, error) {
	nome := strings.TrimSpace(input.Nome)

	cpf := domain.NormalizeDigits(input.CPF)
	if !domain.ValidCPF(cpf) {
		return nil, domain.ErrInvalidIdentifier
	}

	pin := domain.NormalizeDigits(strings.TrimSpace(input.PIN))
	if !domain.ValidPIN(pin) {
		return nil, domain.ErrInvalidPINFormat
	}

	user, err := s.store.Create(ctx, nome, cpf, pin, input.Ativo)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cpf", cpf).Uint("id", user.ID).Msg("user created")

	return &ports.CreateUserResult{ID: user.ID, Nome: user.Nome, CPF: user.CPF}, nil
}
