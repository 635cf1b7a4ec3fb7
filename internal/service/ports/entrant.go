package ports

import (
	"context"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type EntrantRepo interface {
	Create(ctx context.Context, e *domain.Entrant) error
	GetByID(ctx context.Context, id string) (*domain.Entrant, error)
	List(ctx context.Context) ([]*domain.Entrant, error)
}
