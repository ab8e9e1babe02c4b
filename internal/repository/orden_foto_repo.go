package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type OrdenFotoRepository struct {
	db *gorm.DB
}

func NewOrdenFotoRepository(db *gorm.DB) *OrdenFotoRepository {
	return &OrdenFotoRepository{db: db}
}

type ordenFotoModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrdenID   string    `gorm:"column:orden_id;index"`
	Bucket    string    `gorm:"column:bucket"`
	Path      string    `gorm:"column:path"`
	Categoria *string   `gorm:"column:categoria"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (ordenFotoModel) TableName() string { return "orden_fotos" }

func toDomainOrdenFoto(m ordenFotoModel) domain.OrdenFoto {
	return domain.OrdenFoto{
		ID:        m.ID,
		OrdenID:   m.OrdenID,
		Bucket:    m.Bucket,
		Path:      m.Path,
		Categoria: deref(m.Categoria),
		CreatedAt: m.CreatedAt,
	}
}

func (r *OrdenFotoRepository) Create(ctx context.Context, f *domain.OrdenFoto) error {
	m := ordenFotoModel{
		OrdenID:   f.OrdenID,
		Bucket:    f.Bucket,
		Path:      f.Path,
		Categoria: ref(f.Categoria),
		CreatedAt: f.CreatedAt,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = toDomainOrdenFoto(m)
	return nil
}

// ListByOrden returns the normalized photo rows for one order, oldest first.
func (r *OrdenFotoRepository) ListByOrden(ctx context.Context, ordenID string) ([]domain.OrdenFoto, error) {
	var ms []ordenFotoModel
	tx := r.db.WithContext(ctx).Where("orden_id = ?", ordenID).Order("created_at ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.OrdenFoto, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainOrdenFoto(m))
	}
	return out, nil
}

func (r *OrdenFotoRepository) DeleteByOrden(ctx context.Context, ordenID string) error {
	return r.db.WithContext(ctx).Where("orden_id = ?", ordenID).Delete(&ordenFotoModel{}).Error
}
