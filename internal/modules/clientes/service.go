package clientes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type Service struct {
	clientes ClienteRepositoryInterface
	ordenes  OrdenHistoryReader
}

func NewService(clientes ClienteRepositoryInterface, ordenes OrdenHistoryReader) *Service {
	return &Service{clientes: clientes, ordenes: ordenes}
}

func (s *Service) Create(ctx context.Context, req CreateClienteRequest) (*domain.Cliente, error) {
	c := &domain.Cliente{
		Nombre:    strings.TrimSpace(req.Nombre),
		Empresa:   req.Empresa,
		Telefono:  req.Telefono,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Ciudad:    req.Ciudad,
		CreatedAt: time.Now(),
	}

	if err := s.clientes.Create(ctx, c); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailDuplicado
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailDuplicado
		}
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Cliente, error) {
	return s.clientes.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Cliente, error) {
	c, err := s.clientes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.clientes.Delete(ctx, id)
}

// Historial lists the engines this client has brought in, newest first.
func (s *Service) Historial(ctx context.Context, id int64) ([]domain.Orden, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.ordenes.ListByCliente(ctx, c.Nombre)
}
