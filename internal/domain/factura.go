package domain

import "time"

const (
	FacturaEmitida = "emitida"
	FacturaPagada  = "pagada"
	FacturaAnulada = "anulada"
)

// Factura is a billing document tied to zero-or-one orden. CRUD only.
type Factura struct {
	ID            int64     `json:"id"`
	OrdenID       *string   `json:"orden_id,omitempty"`
	ClienteID     *int64    `json:"cliente_id,omitempty"`
	ClienteNombre string    `json:"cliente_nombre"`
	Email         string    `json:"email,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Notas         string    `json:"notas,omitempty"`
	Subtotal      *float64  `json:"subtotal,omitempty"`
	IVA           *float64  `json:"iva,omitempty"`
	Total         float64   `json:"total"`
	Estado        string    `json:"estado"`
	Fecha         time.Time `json:"fecha"`
}
