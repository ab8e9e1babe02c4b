package dashboard

import (
	"context"
	"strings"
	"time"

	"rectificadora/internal/domain"
)

type OrdenReader interface {
	List(ctx context.Context) ([]domain.Orden, error)
}

// Resumen is the KPI block the landing page renders.
type Resumen struct {
	Total          int            `json:"total"`
	Activos        int            `json:"activos"`
	FinalizadosMes int            `json:"finalizados_mes"`
	Urgentes       int            `json:"urgentes"`
	PorEstado      map[string]int `json:"por_estado"`
	PorPrioridad   map[string]int `json:"por_prioridad"`
}

type Service struct {
	ordenes OrdenReader
	now     func() time.Time
}

func NewService(ordenes OrdenReader) *Service {
	return &Service{ordenes: ordenes, now: time.Now}
}

// Resumen aggregates order counts in one pass. "Finalizados del mes" counts
// the delivery-grade states (finalizado, entregado) among orders opened this
// calendar month; "urgentes" counts pending orders with alta or urgente
// priority.
func (s *Service) Resumen(ctx context.Context) (*Resumen, error) {
	ordenes, err := s.ordenes.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	r := &Resumen{
		PorEstado:    map[string]int{},
		PorPrioridad: map[string]int{},
	}

	for _, o := range ordenes {
		estado := strings.ToLower(strings.TrimSpace(o.Estado))
		prioridad := string(domain.NormalizePrioridad(o.Prioridad))

		r.Total++
		r.PorEstado[estado]++
		r.PorPrioridad[prioridad]++

		if !domain.EstadoEsCompletado(estado) {
			r.Activos++
		}

		if (estado == "finalizado" || estado == "entregado") &&
			o.CreatedAt.Year() == now.Year() && o.CreatedAt.Month() == now.Month() {
			r.FinalizadosMes++
		}

		if estado == domain.EstadoPendiente &&
			(prioridad == string(domain.PrioridadAlta) || prioridad == string(domain.PrioridadUrgente)) {
			r.Urgentes++
		}
	}

	return r, nil
}
