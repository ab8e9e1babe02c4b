package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type OrdenRepository struct {
	db *gorm.DB
}

func NewOrdenRepository(db *gorm.DB) *OrdenRepository {
	return &OrdenRepository{db: db}
}

type ordenModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	Cliente          *string    `gorm:"column:cliente"`
	MecanicoDueno    *string    `gorm:"column:mecanico_dueno"`
	CedulaDueno      *string    `gorm:"column:cedula_dueno"`
	Motor            *string    `gorm:"column:motor"`
	SerieMotor       *string    `gorm:"column:serie_motor"`
	TipoMotor        *string    `gorm:"column:tipo_motor"`
	Prioridad        string     `gorm:"column:prioridad"`
	Estado           string     `gorm:"column:estado"`
	FechaEstimada    *time.Time `gorm:"column:fecha_estimada"`
	Precio           *float64   `gorm:"column:precio"`
	Observaciones    *string    `gorm:"column:observaciones"`
	DatosVino        string     `gorm:"column:datos_vino"`
	DatosVinoDetalle *string    `gorm:"column:datos_vino_detalle"`
	FotosBlock       string     `gorm:"column:fotos_block"`
	FotosCabezote    string     `gorm:"column:fotos_cabezote"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (ordenModel) TableName() string { return "ordenes" }

func toDomainOrden(m ordenModel) *domain.Orden {
	o := &domain.Orden{
		ID:               m.ID,
		Cliente:          deref(m.Cliente),
		MecanicoDueno:    deref(m.MecanicoDueno),
		CedulaDueno:      deref(m.CedulaDueno),
		Motor:            deref(m.Motor),
		SerieMotor:       deref(m.SerieMotor),
		TipoMotor:        deref(m.TipoMotor),
		Prioridad:        m.Prioridad,
		Estado:           m.Estado,
		FechaEstimada:    m.FechaEstimada,
		Precio:           m.Precio,
		Observaciones:    deref(m.Observaciones),
		DatosVinoDetalle: deref(m.DatosVinoDetalle),
		FotosBlock:       jsonColumn(m.FotosBlock),
		FotosCabezote:    jsonColumn(m.FotosCabezote),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	if m.DatosVino != "" {
		// Legacy rows can hold anything here; a broken checklist is
		// treated as empty rather than failing the whole read.
		_ = json.Unmarshal([]byte(m.DatosVino), &o.DatosVino)
	}

	return o
}

func toOrdenModel(o *domain.Orden) ordenModel {
	m := ordenModel{
		ID:               o.ID,
		Cliente:          ref(o.Cliente),
		MecanicoDueno:    ref(o.MecanicoDueno),
		CedulaDueno:      ref(o.CedulaDueno),
		Motor:            ref(o.Motor),
		SerieMotor:       ref(o.SerieMotor),
		TipoMotor:        ref(o.TipoMotor),
		Prioridad:        o.Prioridad,
		Estado:           o.Estado,
		FechaEstimada:    o.FechaEstimada,
		Precio:           o.Precio,
		Observaciones:    ref(o.Observaciones),
		DatosVinoDetalle: ref(o.DatosVinoDetalle),
		FotosBlock:       string(o.FotosBlock),
		FotosCabezote:    string(o.FotosCabezote),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}

	if len(o.DatosVino) > 0 {
		if data, err := json.Marshal(o.DatosVino); err == nil {
			m.DatosVino = string(data)
		}
	}

	return m
}

func (r *OrdenRepository) Create(ctx context.Context, o *domain.Orden) error {
	m := toOrdenModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrden(m)
	return nil
}

func (r *OrdenRepository) GetByID(ctx context.Context, id string) (*domain.Orden, error) {
	var m ordenModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrden(m), nil
}

// List returns all orders, newest first.
func (r *OrdenRepository) List(ctx context.Context) ([]domain.Orden, error) {
	var ms []ordenModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Orden, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainOrden(m))
	}
	return out, nil
}

// ListByCliente returns the engine history for one client directory entry.
func (r *OrdenRepository) ListByCliente(ctx context.Context, cliente string) ([]domain.Orden, error) {
	var ms []ordenModel
	tx := r.db.WithContext(ctx).Where("cliente = ?", cliente).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Orden, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainOrden(m))
	}
	return out, nil
}

func (r *OrdenRepository) Update(ctx context.Context, o *domain.Orden) error {
	m := toOrdenModel(o)
	return r.db.WithContext(ctx).Where("id = ?", m.ID).Save(&m).Error
}

func (r *OrdenRepository) UpdateEstado(ctx context.Context, id, estado string) error {
	return r.db.WithContext(ctx).Model(&ordenModel{}).Where("id = ?", id).Updates(map[string]any{
		"estado":     estado,
		"updated_at": time.Now(),
	}).Error
}

// UpdateFotos overwrites both JSON photo columns in one statement.
func (r *OrdenRepository) UpdateFotos(ctx context.Context, id string, fotosBlock, fotosCabezote json.RawMessage) error {
	return r.db.WithContext(ctx).Model(&ordenModel{}).Where("id = ?", id).Updates(map[string]any{
		"fotos_block":    string(fotosBlock),
		"fotos_cabezote": string(fotosCabezote),
		"updated_at":     time.Now(),
	}).Error
}

func (r *OrdenRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&ordenModel{}).Error
}

func jsonColumn(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	return json.RawMessage(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
