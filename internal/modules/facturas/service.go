package facturas

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

// Service is intentionally thin: invoices are records of what was charged,
// no derived totals or tax math happens here.
type Service struct {
	facturas FacturaRepositoryInterface
}

func NewService(facturas FacturaRepositoryInterface) *Service {
	return &Service{facturas: facturas}
}

func (s *Service) Create(ctx context.Context, req CreateFacturaRequest) (*domain.Factura, error) {
	nombre := strings.TrimSpace(req.ClienteNombre)
	if nombre == "" || req.Total <= 0 {
		return nil, ErrValidation
	}

	f := &domain.Factura{
		OrdenID:       req.OrdenID,
		ClienteID:     req.ClienteID,
		ClienteNombre: nombre,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Telefono:      req.Telefono,
		Notas:         req.Notas,
		Subtotal:      req.Subtotal,
		IVA:           req.IVA,
		Total:         req.Total,
		Estado:        domain.FacturaEmitida,
		Fecha:         time.Now(),
	}

	if err := s.facturas.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Factura, error) {
	return s.facturas.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Factura, error) {
	f, err := s.facturas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacturaNotFound
		}
		return nil, err
	}
	return f, nil
}
