package ordenes

type CreateOrdenRequest struct {
	Cliente          string          `json:"cliente" binding:"required"`
	MecanicoDueno    string          `json:"mecanico_dueno"`
	CedulaDueno      string          `json:"cedula_dueno"`
	Motor            string          `json:"motor" binding:"required"`
	SerieMotor       string          `json:"serie_motor"`
	TipoMotor        string          `json:"tipo_motor"`
	Prioridad        string          `json:"prioridad"`
	Estado           string          `json:"estado"`
	FechaEstimada    string          `json:"fecha_estimada"`
	Precio           *float64        `json:"precio"`
	Observaciones    string          `json:"observaciones"`
	DatosVino        map[string]bool `json:"datos_vino"`
	DatosVinoDetalle string          `json:"datos_vino_detalle"`
}

// UpdateOrdenRequest is a partial update: nil fields are left untouched.
type UpdateOrdenRequest struct {
	Cliente          *string          `json:"cliente"`
	MecanicoDueno    *string          `json:"mecanico_dueno"`
	CedulaDueno      *string          `json:"cedula_dueno"`
	Motor            *string          `json:"motor"`
	SerieMotor       *string          `json:"serie_motor"`
	TipoMotor        *string          `json:"tipo_motor"`
	Prioridad        *string          `json:"prioridad"`
	Estado           *string          `json:"estado"`
	FechaEstimada    *string          `json:"fecha_estimada"`
	Precio           *float64         `json:"precio"`
	Observaciones    *string          `json:"observaciones"`
	DatosVino        *map[string]bool `json:"datos_vino"`
	DatosVinoDetalle *string          `json:"datos_vino_detalle"`
}
