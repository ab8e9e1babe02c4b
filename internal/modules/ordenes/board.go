package ordenes

import (
	"sort"
	"time"

	"rectificadora/internal/domain"
)

// Tablero is the board view of the workshop: one column per priority plus the
// completed list. Every input order lands in exactly one column.
type Tablero struct {
	Urgente     []domain.Orden `json:"urgente"`
	Alta        []domain.Orden `json:"alta"`
	Media       []domain.Orden `json:"media"`
	Baja        []domain.Orden `json:"baja"`
	Completadas []domain.Orden `json:"completadas"`
}

// BuildTablero partitions orders into the board columns. Completed-state
// synonyms go to Completadas regardless of priority; everything else is
// bucketed by normalized priority, unknown values landing in Media.
//
// Active columns sort ascending by due date, falling back to creation date;
// orders with neither sort first. Completadas sorts by creation date
// descending, undated rows last. Ties keep input order.
func BuildTablero(ordenes []domain.Orden) Tablero {
	t := Tablero{
		Urgente:     []domain.Orden{},
		Alta:        []domain.Orden{},
		Media:       []domain.Orden{},
		Baja:        []domain.Orden{},
		Completadas: []domain.Orden{},
	}

	for _, o := range ordenes {
		if domain.EstadoEsCompletado(o.Estado) {
			t.Completadas = append(t.Completadas, o)
			continue
		}
		switch domain.NormalizePrioridad(o.Prioridad) {
		case domain.PrioridadUrgente:
			t.Urgente = append(t.Urgente, o)
		case domain.PrioridadAlta:
			t.Alta = append(t.Alta, o)
		case domain.PrioridadBaja:
			t.Baja = append(t.Baja, o)
		default:
			t.Media = append(t.Media, o)
		}
	}

	sortActivas(t.Urgente)
	sortActivas(t.Alta)
	sortActivas(t.Media)
	sortActivas(t.Baja)
	sortCompletadas(t.Completadas)

	return t
}

// fechaClave is the schedule key of an active order: due date when set,
// otherwise creation date, otherwise the zero time.
func fechaClave(o domain.Orden) time.Time {
	if o.FechaEstimada != nil {
		return *o.FechaEstimada
	}
	return o.CreatedAt
}

func sortActivas(col []domain.Orden) {
	sort.SliceStable(col, func(i, j int) bool {
		return fechaClave(col[i]).Before(fechaClave(col[j]))
	})
}

func sortCompletadas(col []domain.Orden) {
	sort.SliceStable(col, func(i, j int) bool {
		a, b := col[i].CreatedAt, col[j].CreatedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
}
