package fotos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type mockOrdenReader struct {
	mock.Mock
}

func (m *mockOrdenReader) GetByID(ctx context.Context, id string) (*domain.Orden, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Orden), args.Error(1)
}

func (m *mockOrdenReader) UpdateFotos(ctx context.Context, id string, fotosBlock, fotosCabezote json.RawMessage) error {
	args := m.Called(ctx, id, fotosBlock, fotosCabezote)
	return args.Error(0)
}

type mockFotoRepo struct {
	mock.Mock
}

func (m *mockFotoRepo) Create(ctx context.Context, f *domain.OrdenFoto) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFotoRepo) ListByOrden(ctx context.Context, ordenID string) ([]domain.OrdenFoto, error) {
	args := m.Called(ctx, ordenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrdenFoto), args.Error(1)
}

func (m *mockFotoRepo) DeleteByOrden(ctx context.Context, ordenID string) error {
	args := m.Called(ctx, ordenID)
	return args.Error(0)
}

// fakeSigner signs deterministically and can be told to fail for one path.
type fakeSigner struct {
	failPath string
}

func (s *fakeSigner) SignedURL(bucket, path string, expiresIn time.Duration) (string, error) {
	if path == s.failPath {
		return "", errors.New("signing failed")
	}
	return fmt.Sprintf("https://storage.local/%s/%s?token=x", bucket, path), nil
}

func TestResolver_PrimarySourceWins(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID:         "o1",
		FotosBlock: json.RawMessage(`["legacy.jpg"]`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{
		{OrdenID: "o1", Bucket: "ordenes-fotos-block", Path: "o1/a.jpg", Categoria: "block"},
		{OrdenID: "o1", Bucket: "ordenes-fotos-cabezote", Path: "o1/b.jpg", Categoria: "cabezote"},
	}, nil)

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	require.Len(t, result.Fotos, 2)
	assert.Equal(t, "o1/a.jpg", result.Fotos[0].Path)
	assert.Equal(t, "o1/b.jpg", result.Fotos[1].Path)
	assert.False(t, result.Debug.Fallback)
	assert.Equal(t, 2, result.Debug.Encontradas)
	assert.Equal(t, 2, result.Debug.Firmadas)
}

func TestResolver_FallsBackOnEmptyTable(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID:            "o1",
		FotosBlock:    json.RawMessage(`["o1/viejo1.jpg", {"path":"o1/viejo2.jpg"}]`),
		FotosCabezote: json.RawMessage(`[{"path":"o1/cab.jpg","tipo":"culata"}]`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{}, nil)

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	assert.True(t, result.Debug.Fallback)
	require.Len(t, result.Fotos, 3)

	assert.Equal(t, "ordenes-fotos-block", result.Fotos[0].Bucket)
	assert.Equal(t, "block", result.Fotos[0].Categoria)
	assert.Equal(t, "block", result.Fotos[1].Categoria)
	assert.Equal(t, "culata", result.Fotos[2].Categoria)
	assert.Equal(t, "ordenes-fotos-cabezote", result.Fotos[2].Bucket)
}

func TestResolver_FallsBackOnTableError(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID:         "o1",
		FotosBlock: json.RawMessage(`["o1/solo.jpg"]`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return(nil, errors.New("table missing"))

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	assert.True(t, result.Debug.Fallback)
	require.Len(t, result.Fotos, 1)
	assert.Equal(t, "o1/solo.jpg", result.Fotos[0].Path)
}

func TestResolver_CategoriaPriorityOrder(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID: "o1",
		FotosBlock: json.RawMessage(`[
			{"path":"a.jpg","categoria":"cat","tipo":"tip","group":"grp"},
			{"path":"b.jpg","tipo":"tip","group":"grp"},
			{"path":"c.jpg","group":"grp"},
			{"path":"d.jpg"}
		]`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{}, nil)

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	require.Len(t, result.Fotos, 4)
	assert.Equal(t, "cat", result.Fotos[0].Categoria)
	assert.Equal(t, "tip", result.Fotos[1].Categoria)
	assert.Equal(t, "grp", result.Fotos[2].Categoria)
	assert.Equal(t, "block", result.Fotos[3].Categoria)
}

func TestResolver_DropsEntriesWithoutPath(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID:            "o1",
		FotosBlock:    json.RawMessage(`[{"categoria":"block"}, "", {"path":"ok.jpg"}, 42]`),
		FotosCabezote: json.RawMessage(`{"not":"an array"}`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{}, nil)

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	require.Len(t, result.Fotos, 1)
	assert.Equal(t, "ok.jpg", result.Fotos[0].Path)
}

func TestResolver_SigningFailureSkipsPhotoOnly(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{ID: "o1"}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{
		{Bucket: "ordenes-fotos-block", Path: "o1/ok.jpg", Categoria: "block"},
		{Bucket: "ordenes-fotos-block", Path: "o1/broken.jpg", Categoria: "block"},
		{Bucket: "ordenes-fotos-block", Path: "o1/tambien.jpg", Categoria: "block"},
	}, nil)

	r := NewResolver(ordenes, repo, &fakeSigner{failPath: "o1/broken.jpg"}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Debug.Encontradas)
	assert.Equal(t, 2, result.Debug.Firmadas)
	require.Len(t, result.Fotos, 2)
	assert.Equal(t, "o1/ok.jpg", result.Fotos[0].Path)
	assert.Equal(t, "o1/tambien.jpg", result.Fotos[1].Path)
}

func TestResolver_OrdenNotFound(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	_, err := r.Resolve(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOrdenNotFound)
}

func TestResolver_NoPhotosAnywhere(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{ID: "o1"}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{}, nil)

	r := NewResolver(ordenes, repo, &fakeSigner{}, time.Hour)
	result, err := r.Resolve(context.Background(), "o1")

	require.NoError(t, err)
	assert.NotNil(t, result.Fotos)
	assert.Empty(t, result.Fotos)
	assert.True(t, result.Debug.Fallback)
	assert.Equal(t, 0, result.Debug.Encontradas)
}
