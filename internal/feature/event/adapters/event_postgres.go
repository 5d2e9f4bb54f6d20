// Package adapters provides the repository implementations for the event feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"campuschain_backend/internal/feature/event/domain/entity"
	"campuschain_backend/internal/feature/event/usecase"
)

// eventPostgres is the Postgres implementation of the EventRepository interface.
type eventPostgres struct {
	db *gorm.DB
}

// Compile-time check that eventPostgres implements usecase.EventRepository.
var _ usecase.EventRepository = (*eventPostgres)(nil)

// NewEventPostgres creates an event repository on the given connection.
func NewEventPostgres(db *gorm.DB) *eventPostgres {
	return &eventPostgres{db: db}
}

// Create inserts an event.
func (r *eventPostgres) Create(ctx context.Context, e *entity.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ListByDate returns all events ordered by event date ascending.
func (r *eventPostgres) ListByDate(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.db.WithContext(ctx).Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
