package ordenes

import (
	"context"

	"rectificadora/internal/domain"
)

// OrdenRepositoryInterface — only the methods this module uses
type OrdenRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Orden) error
	GetByID(ctx context.Context, id string) (*domain.Orden, error)
	List(ctx context.Context) ([]domain.Orden, error)
	Update(ctx context.Context, o *domain.Orden) error
	UpdateEstado(ctx context.Context, id, estado string) error
	Delete(ctx context.Context, id string) error
}

// BoardNotifier pushes board-refresh events to connected clients.
type BoardNotifier interface {
	Broadcast(message interface{})
}
