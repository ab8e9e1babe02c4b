package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type ClienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

type clienteModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre    string    `gorm:"column:nombre"`
	Empresa   *string   `gorm:"column:empresa"`
	Telefono  *string   `gorm:"column:telefono"`
	Email     *string   `gorm:"column:email;uniqueIndex"`
	Ciudad    *string   `gorm:"column:ciudad"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (clienteModel) TableName() string { return "clientes" }

func toDomainCliente(m clienteModel) domain.Cliente {
	return domain.Cliente{
		ID:        m.ID,
		Nombre:    m.Nombre,
		Empresa:   deref(m.Empresa),
		Telefono:  deref(m.Telefono),
		Email:     deref(m.Email),
		Ciudad:    deref(m.Ciudad),
		CreatedAt: m.CreatedAt,
	}
}

func (r *ClienteRepository) Create(ctx context.Context, c *domain.Cliente) error {
	m := clienteModel{
		Nombre:    c.Nombre,
		Empresa:   ref(c.Empresa),
		Telefono:  ref(c.Telefono),
		Email:     ref(c.Email),
		Ciudad:    ref(c.Ciudad),
		CreatedAt: time.Now(),
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = toDomainCliente(m)
	return nil
}

func (r *ClienteRepository) GetByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	var m clienteModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	c := toDomainCliente(m)
	return &c, nil
}

// List returns the client directory, newest first.
func (r *ClienteRepository) List(ctx context.Context) ([]domain.Cliente, error) {
	var ms []clienteModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Cliente, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainCliente(m))
	}
	return out, nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&clienteModel{}, id).Error
}
