package clientes

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type mockClienteRepo struct {
	mock.Mock
}

func (m *mockClienteRepo) Create(ctx context.Context, c *domain.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClienteRepo) GetByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *mockClienteRepo) List(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *mockClienteRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrdenHistory struct {
	mock.Mock
}

func (m *mockOrdenHistory) ListByCliente(ctx context.Context, cliente string) ([]domain.Orden, error) {
	args := m.Called(ctx, cliente)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Orden), args.Error(1)
}

func TestService_Create_NormalizesEmail(t *testing.T) {
	repo := new(mockClienteRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, new(mockOrdenHistory))
	c, err := svc.Create(context.Background(), CreateClienteRequest{
		Nombre: "  Juan Suárez ",
		Email:  " Juan@Taller.COM ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Juan Suárez", c.Nombre)
	assert.Equal(t, "juan@taller.com", c.Email)
}

func TestService_Create_DuplicateEmailPostgres(t *testing.T) {
	repo := new(mockClienteRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

	svc := NewService(repo, new(mockOrdenHistory))
	_, err := svc.Create(context.Background(), CreateClienteRequest{Nombre: "Juan", Email: "juan@taller.com"})

	assert.ErrorIs(t, err, ErrEmailDuplicado)
}

func TestService_Create_DuplicateEmailSQLite(t *testing.T) {
	repo := new(mockClienteRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewService(repo, new(mockOrdenHistory))
	_, err := svc.Create(context.Background(), CreateClienteRequest{Nombre: "Juan", Email: "juan@taller.com"})

	assert.ErrorIs(t, err, ErrEmailDuplicado)
}

func TestService_Historial_UsesClientName(t *testing.T) {
	repo := new(mockClienteRepo)
	ordenes := new(mockOrdenHistory)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Cliente{ID: 3, Nombre: "Transportes Vélez"}, nil)
	ordenes.On("ListByCliente", mock.Anything, "Transportes Vélez").Return([]domain.Orden{
		{ID: "o1", Cliente: "Transportes Vélez"},
	}, nil)

	svc := NewService(repo, ordenes)
	historial, err := svc.Historial(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.Equal(t, "o1", historial[0].ID)
}

func TestService_Historial_ClienteNotFound(t *testing.T) {
	repo := new(mockClienteRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, new(mockOrdenHistory))
	_, err := svc.Historial(context.Background(), 99)

	assert.ErrorIs(t, err, ErrClienteNotFound)
}
