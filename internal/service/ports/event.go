package ports

import (
	"context"
	"time"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	ListDueForClose(ctx context.Context, now time.Time) ([]*domain.Event, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.EventStatus) error
}
