package ports

import (
	"context"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

// UserDirectory resolves identifiers to users and checks their PINs.
// Two implementations exist: a postgres-backed one with bcrypt-hashed
// credentials and a roster-file-backed one with plain PINs. Which one
// serves depends on configuration, callers never know the difference.
type UserDirectory interface {
	// Resolve returns the active user for a normalized 11-digit CPF.
	// Returns domain.ErrUserNotFound when the CPF is unknown or the
	// user is inactive.
	Resolve(ctx context.Context, cpf string) (*domain.User, error)

	// VerifyPIN compares a normalized supplied PIN against the user's
	// stored credential. Returns domain.ErrInvalidPIN on mismatch.
	VerifyPIN(user *domain.User, pin string) error
}

// UserStore extends the directory with administrative creation.
// Only the postgres-backed directory implements it.
type UserStore interface {
	UserDirectory

	// Create registers a new user. The CPF must already be normalized;
	// the PIN is hashed before storage. Returns domain.ErrUserExists
	// on duplicate CPF.
	Create(ctx context.Context, nome, cpf, pin string, ativo bool) (*domain.User, error)
}
