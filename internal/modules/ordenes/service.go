package ordenes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type Service struct {
	ordenes  OrdenRepositoryInterface
	notifier BoardNotifier
}

func NewService(ordenes OrdenRepositoryInterface, notifier BoardNotifier) *Service {
	return &Service{ordenes: ordenes, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, req CreateOrdenRequest) (*domain.Orden, error) {
	fecha, err := parseFechaEstimada(req.FechaEstimada)
	if err != nil {
		return nil, ErrValidation
	}

	estado := strings.ToLower(strings.TrimSpace(req.Estado))
	if estado == "" {
		estado = domain.EstadoPendiente
	}

	now := time.Now()
	o := &domain.Orden{
		ID:               uuid.NewString(),
		Cliente:          strings.TrimSpace(req.Cliente),
		MecanicoDueno:    req.MecanicoDueno,
		CedulaDueno:      req.CedulaDueno,
		Motor:            req.Motor,
		SerieMotor:       req.SerieMotor,
		TipoMotor:        req.TipoMotor,
		Prioridad:        string(domain.NormalizePrioridad(req.Prioridad)),
		Estado:           estado,
		FechaEstimada:    fecha,
		Precio:           req.Precio,
		Observaciones:    req.Observaciones,
		DatosVino:        req.DatosVino,
		DatosVinoDetalle: req.DatosVinoDetalle,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.ordenes.Create(ctx, o); err != nil {
		return nil, err
	}

	s.notifyBoardChanged()
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Orden, error) {
	return s.ordenes.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Orden, error) {
	o, err := s.ordenes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrdenNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateOrdenRequest) (*domain.Orden, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Cliente != nil {
		o.Cliente = strings.TrimSpace(*req.Cliente)
	}
	if req.MecanicoDueno != nil {
		o.MecanicoDueno = *req.MecanicoDueno
	}
	if req.CedulaDueno != nil {
		o.CedulaDueno = *req.CedulaDueno
	}
	if req.Motor != nil {
		o.Motor = *req.Motor
	}
	if req.SerieMotor != nil {
		o.SerieMotor = *req.SerieMotor
	}
	if req.TipoMotor != nil {
		o.TipoMotor = *req.TipoMotor
	}
	if req.Prioridad != nil {
		o.Prioridad = string(domain.NormalizePrioridad(*req.Prioridad))
	}
	if req.Estado != nil {
		o.Estado = strings.ToLower(strings.TrimSpace(*req.Estado))
	}
	if req.FechaEstimada != nil {
		fecha, err := parseFechaEstimada(*req.FechaEstimada)
		if err != nil {
			return nil, ErrValidation
		}
		o.FechaEstimada = fecha
	}
	if req.Precio != nil {
		o.Precio = req.Precio
	}
	if req.Observaciones != nil {
		o.Observaciones = *req.Observaciones
	}
	if req.DatosVino != nil {
		o.DatosVino = *req.DatosVino
	}
	if req.DatosVinoDetalle != nil {
		o.DatosVinoDetalle = *req.DatosVinoDetalle
	}
	o.UpdatedAt = time.Now()

	if err := s.ordenes.Update(ctx, o); err != nil {
		return nil, err
	}

	s.notifyBoardChanged()
	return o, nil
}

// Finalizar marks the order completed. It does not touch stored photos.
func (s *Service) Finalizar(ctx context.Context, id string) (*domain.Orden, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.ordenes.UpdateEstado(ctx, id, domain.EstadoCompletado); err != nil {
		return nil, err
	}

	s.notifyBoardChanged()
	return s.Get(ctx, id)
}

// Delete removes the order row only. Photo blobs and orden_fotos rows stay
// until the photo-cleanup endpoint is called.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.ordenes.Delete(ctx, id); err != nil {
		return err
	}
	s.notifyBoardChanged()
	return nil
}

func (s *Service) Tablero(ctx context.Context) (Tablero, error) {
	all, err := s.ordenes.List(ctx)
	if err != nil {
		return Tablero{}, err
	}
	return BuildTablero(all), nil
}

func (s *Service) notifyBoardChanged() {
	if s.notifier != nil {
		s.notifier.Broadcast(map[string]string{"type": "ordenes_updated"})
	}
}

// parseFechaEstimada accepts either a bare date or a full RFC 3339 timestamp.
// Empty input means no due date.
func parseFechaEstimada(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
