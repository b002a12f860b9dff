package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

type stubStore struct {
	*stubDirectory
	createErr error
	created   []string
}

func (s *stubStore) Create(_ context.Context, nome, cpf, pin string, ativo bool) (*domain.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.users[cpf]; ok {
		return nil, domain.ErrUserExists
	}
	s.add(nome, cpf, pin, ativo)
	s.created = append(s.created, cpf)
	u := s.users[cpf]
	u.ID = uint(len(s.created))
	return u, nil
}

func TestAdminService_CreateUser(t *testing.T) {
	store := &stubStore{stubDirectory: newStubDirectory()}
	svc := NewAdminService(store, zerolog.Nop())

	res, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Nome: "  Ana Silva  ", CPF: "123.456.789-01", PIN: "1234", Ativo: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.CPF != "12345678901" {
		t.Errorf("CPF not normalized: %s", res.CPF)
	}
	if res.Nome != "Ana Silva" {
		t.Errorf("name not trimmed: %q", res.Nome)
	}
}

func TestAdminService_CreateUser_Duplicate(t *testing.T) {
	store := &stubStore{stubDirectory: seededDirectory()}
	svc := NewAdminService(store, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Nome: "Ana Silva", CPF: "12345678901", PIN: "1234", Ativo: true,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got: %v", err)
	}
}

func TestAdminService_CreateUser_Validation(t *testing.T) {
	store := &stubStore{stubDirectory: newStubDirectory()}
	svc := NewAdminService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, ports.CreateUserInput{Nome: "X", CPF: "123", PIN: "1234"})
	if !errors.Is(err, domain.ErrInvalidIdentifier) {
		t.Errorf("expected ErrInvalidIdentifier, got: %v", err)
	}

	_, err = svc.CreateUser(ctx, ports.CreateUserInput{Nome: "X", CPF: "12345678901", PIN: "12"})
	if !errors.Is(err, domain.ErrInvalidPINFormat) {
		t.Errorf("expected ErrInvalidPINFormat, got: %v", err)
	}
	if len(store.created) != 0 {
		t.Errorf("nothing may be created on validation failure")
	}
}
