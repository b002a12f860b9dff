package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// LedgerRepository implements ports.LedgerRepository on PostgreSQL.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) ports.LedgerRepository {
	return &LedgerRepository{db: db}
}

// Record runs the check-then-write sequence inside one transaction.
// A per-CPF advisory lock serializes concurrent calls for the same
// user, so two racing check-ins cannot both pass the alternation check
// and produce two consecutive events with the same action.
func (r *LedgerRepository) Record(ctx context.Context, event domain.AttendanceEvent) (*domain.AttendanceEvent, error) {
	row := eventModel{
		CPF:      event.CPF,
		Nome:     event.Nome,
		Acao:     string(event.Action),
		DataHora: event.Timestamp,
		IPOrigem: event.OriginIP,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", event.CPF).Error; err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}

		var last eventModel
		err := tx.Where("cpf = ?", event.CPF).Order("data_hora DESC").Take(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("read last event: %w", err)
		}
		if err == nil && !event.Action.CanFollow(domain.Action(last.Acao)) {
			return &domain.AlternationError{Prior: domain.Action(last.Acao)}
		}

		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}

	created := row.toDomain()
	return &created, nil
}

// LastEvent returns the most recent event for a CPF, nil when none exists.
func (r *LedgerRepository) LastEvent(ctx context.Context, cpf string) (*domain.AttendanceEvent, error) {
	var row eventModel
	err := r.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		Order("data_hora DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ev := row.toDomain()
	return &ev, nil
}

// Query returns every event inside the inclusive range, ascending.
func (r *LedgerRepository) Query(ctx context.Context, startInclusive, endInclusive time.Time) ([]domain.AttendanceEvent, error) {
	var rows []eventModel
	err := r.db.WithContext(ctx).
		Where("data_hora >= ? AND data_hora <= ?", startInclusive, endInclusive).
		Order("data_hora ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]domain.AttendanceEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toDomain())
	}
	return events, nil
}
