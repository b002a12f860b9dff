package ports

import (
	"context"
	"time"
)

// CheckInput carries a raw check-in request. CPF and PIN arrive as
// typed by the user; the service normalizes them.
type CheckInput struct {
	CPF      string
	PIN      string
	Action   string
	OriginIP string
}

// CheckResult is returned after a successful check-in.
type CheckResult struct {
	Nome      string
	CPF       string
	Action    string
	Timestamp time.Time
}

// CheckinService registers attendance events.
type CheckinService interface {
	Check(ctx context.Context, input CheckInput) (*CheckResult, error)
}

// CreateUserInput carries an administrative user-creation request.
type CreateUserInput struct {
	Nome  string
	CPF   string
	PIN   string
	Ativo bool
}

// AdminService manages users in the store-backed directory.
type AdminService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*CreateUserResult, error)
}

// CreateUserResult is returned after a successful user creation.
type CreateUserResult struct {
	ID   uint
	Nome string
	CPF  string
}
