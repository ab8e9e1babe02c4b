package facturas

type CreateFacturaRequest struct {
	OrdenID       *string  `json:"orden_id"`
	ClienteID     *int64   `json:"cliente_id"`
	ClienteNombre string   `json:"cliente_nombre" binding:"required"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Telefono      string   `json:"telefono"`
	Notas         string   `json:"notas"`
	Subtotal      *float64 `json:"subtotal"`
	IVA           *float64 `json:"iva"`
	Total         float64  `json:"total" binding:"required,gt=0"`
}
