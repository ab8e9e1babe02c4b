package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type FacturaRepository struct {
	db *gorm.DB
}

func NewFacturaRepository(db *gorm.DB) *FacturaRepository {
	return &FacturaRepository{db: db}
}

type facturaModel struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrdenID       *string   `gorm:"column:orden_id"`
	ClienteID     *int64    `gorm:"column:cliente_id"`
	ClienteNombre string    `gorm:"column:cliente_nombre"`
	Email         *string   `gorm:"column:email"`
	Telefono      *string   `gorm:"column:telefono"`
	Notas         *string   `gorm:"column:notas"`
	Subtotal      *float64  `gorm:"column:subtotal"`
	IVA           *float64  `gorm:"column:iva"`
	Total         float64   `gorm:"column:total"`
	Estado        string    `gorm:"column:estado"`
	Fecha         time.Time `gorm:"column:fecha"`
}

func (facturaModel) TableName() string { return "facturas" }

func toDomainFactura(m facturaModel) domain.Factura {
	return domain.Factura{
		ID:            m.ID,
		OrdenID:       m.OrdenID,
		ClienteID:     m.ClienteID,
		ClienteNombre: m.ClienteNombre,
		Email:         deref(m.Email),
		Telefono:      deref(m.Telefono),
		Notas:         deref(m.Notas),
		Subtotal:      m.Subtotal,
		IVA:           m.IVA,
		Total:         m.Total,
		Estado:        m.Estado,
		Fecha:         m.Fecha,
	}
}

func (r *FacturaRepository) Create(ctx context.Context, f *domain.Factura) error {
	m := facturaModel{
		OrdenID:       f.OrdenID,
		ClienteID:     f.ClienteID,
		ClienteNombre: f.ClienteNombre,
		Email:         ref(f.Email),
		Telefono:      ref(f.Telefono),
		Notas:         ref(f.Notas),
		Subtotal:      f.Subtotal,
		IVA:           f.IVA,
		Total:         f.Total,
		Estado:        f.Estado,
		Fecha:         f.Fecha,
	}
	if m.Fecha.IsZero() {
		m.Fecha = time.Now()
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = toDomainFactura(m)
	return nil
}

func (r *FacturaRepository) GetByID(ctx context.Context, id int64) (*domain.Factura, error) {
	var m facturaModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	f := toDomainFactura(m)
	return &f, nil
}

// List returns all invoices, most recent issue date first.
func (r *FacturaRepository) List(ctx context.Context) ([]domain.Factura, error) {
	var ms []facturaModel
	tx := r.db.WithContext(ctx).Order("fecha DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Factura, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainFactura(m))
	}
	return out, nil
}
