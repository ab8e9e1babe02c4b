package fotos

import (
	"context"
	"encoding/json"

	"rectificadora/internal/domain"
)

// OrdenReader — the slice of the order repository this module needs
type OrdenReader interface {
	GetByID(ctx context.Context, id string) (*domain.Orden, error)
	UpdateFotos(ctx context.Context, id string, fotosBlock, fotosCabezote json.RawMessage) error
}

type FotoRepositoryInterface interface {
	Create(ctx context.Context, f *domain.OrdenFoto) error
	ListByOrden(ctx context.Context, ordenID string) ([]domain.OrdenFoto, error)
	DeleteByOrden(ctx context.Context, ordenID string) error
}
