package ports

import (
	"context"
	"time"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

// LedgerRepository persists attendance events and enforces the
// per-user alternation invariant.
type LedgerRepository interface {
	// Record reads the user's most recent event and, when its action
	// differs from event.Action (or no prior event exists), persists
	// the new event and returns it with its assigned ID. When the
	// prior action equals the requested one it fails with
	// *domain.AlternationError and writes nothing.
	//
	// The check-then-write sequence is atomic per CPF: two concurrent
	// calls for the same user cannot both pass the alternation check.
	Record(ctx context.Context, event domain.AttendanceEvent) (*domain.AttendanceEvent, error)

	// LastEvent returns the most recent event for a CPF, or nil when
	// the user has no events yet.
	LastEvent(ctx context.Context, cpf string) (*domain.AttendanceEvent, error)

	// Query returns every event with startInclusive <= timestamp <=
	// endInclusive, ascending by timestamp.
	Query(ctx context.Context, startInclusive, endInclusive time.Time) ([]domain.AttendanceEvent, error)
}
