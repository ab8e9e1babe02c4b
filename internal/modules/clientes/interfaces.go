package clientes

import (
	"context"

	"rectificadora/internal/domain"
)

type ClienteRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Cliente) error
	GetByID(ctx context.Context, id int64) (*domain.Cliente, error)
	List(ctx context.Context) ([]domain.Cliente, error)
	Delete(ctx context.Context, id int64) error
}

// OrdenHistoryReader resolves a client's engine history. Orders reference the
// client by name, not id; that is the shape the intake form has always used.
type OrdenHistoryReader interface {
	ListByCliente(ctx context.Context, cliente string) ([]domain.Orden, error)
}
