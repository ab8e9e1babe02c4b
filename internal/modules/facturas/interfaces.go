package facturas

import (
	"context"

	"rectificadora/internal/domain"
)

type FacturaRepositoryInterface interface {
	Create(ctx context.Context, f *domain.Factura) error
	GetByID(ctx context.Context, id int64) (*domain.Factura, error)
	List(ctx context.Context) ([]domain.Factura, error)
}
