package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type Prioridad string

const (
	PrioridadUrgente Prioridad = "urgente"
	PrioridadAlta    Prioridad = "alta"
	PrioridadMedia   Prioridad = "media"
	PrioridadBaja    Prioridad = "baja"
)

// NormalizePrioridad maps a free-form priority value to one of the four known
// buckets. Anything unrecognized (including empty) lands in media.
func NormalizePrioridad(p string) Prioridad {
	switch Prioridad(strings.ToLower(strings.TrimSpace(p))) {
	case PrioridadUrgente:
		return PrioridadUrgente
	case PrioridadAlta:
		return PrioridadAlta
	case PrioridadMedia:
		return PrioridadMedia
	case PrioridadBaja:
		return PrioridadBaja
	default:
		return PrioridadMedia
	}
}

const (
	EstadoPendiente  = "pendiente"
	EstadoEnProceso  = "en-proceso"
	EstadoCompletado = "completado"
)

// estadosCompletados is the synonym set of status values treated as terminal
// for board grouping. Matching is always lowercased+trimmed.
var estadosCompletados = map[string]bool{
	"completado": true,
	"finalizado": true,
	"realizado":  true,
	"entregado":  true,
}

func EstadoEsCompletado(estado string) bool {
	return estadosCompletados[strings.ToLower(strings.TrimSpace(estado))]
}

// Orden is one engine brought in for service, tracked from intake to delivery.
type Orden struct {
	ID               string          `json:"id"`
	Cliente          string          `json:"cliente"`
	MecanicoDueno    string          `json:"mecanico_dueno"`
	CedulaDueno      string          `json:"cedula_dueno,omitempty"`
	Motor            string          `json:"motor"`
	SerieMotor       string          `json:"serie_motor,omitempty"`
	TipoMotor        string          `json:"tipo_motor,omitempty"`
	Prioridad        string          `json:"prioridad"`
	Estado           string          `json:"estado"`
	FechaEstimada    *time.Time      `json:"fecha_estimada,omitempty"`
	Precio           *float64        `json:"precio,omitempty"`
	Observaciones    string          `json:"observaciones,omitempty"`
	DatosVino        map[string]bool `json:"datos_vino,omitempty"`
	DatosVinoDetalle string          `json:"datos_vino_detalle,omitempty"`
	FotosBlock       json.RawMessage `json:"fotos_block,omitempty"`
	FotosCabezote    json.RawMessage `json:"fotos_cabezote,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
