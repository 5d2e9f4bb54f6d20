// Package usecase implements the business logic for event operations.
package usecase

import (
	"context"

	"campuschain_backend/internal/feature/event/domain/entity"
)

// EventRepository abstracts the persistence layer for events.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, e *entity.Event) error

	// ListByDate returns all events ordered by event date ascending.
	ListByDate(ctx context.Context) ([]entity.Event, error)
}

// EventUsecase provides event creation and listing.
type EventUsecase struct {
	repo EventRepository
}

// NewEventUsecase creates a new EventUsecase with the given repository.
func NewEventUsecase(r EventRepository) *EventUsecase {
	return &EventUsecase{repo: r}
}

// Create stores a new event. createdBy is the authenticated admin's email.
func (u *EventUsecase) Create(ctx context.Context, e *entity.Event, createdBy string) (*entity.Event, error) {
	e.CreatedBy = createdBy
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns all events in date order.
func (u *EventUsecase) List(ctx context.Context) ([]entity.Event, error) {
	return u.repo.ListByDate(ctx)
}
