package fotos

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rectificadora/internal/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(bucket, path string, r io.Reader) error {
	args := m.Called(bucket, path, r)
	return args.Error(0)
}

func (m *mockStore) Delete(bucket, path string) error {
	args := m.Called(bucket, path)
	return args.Error(0)
}

// imageHeader builds a real multipart.FileHeader backed by an in-memory form.
func imageHeader(t *testing.T, filename, contentType string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="fotos"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	files := form.File["fotos"]
	require.Len(t, files, 1)
	return files[0]
}

func TestServiceUpload_InvalidCategoria(t *testing.T) {
	svc := NewService(new(mockOrdenReader), new(mockFotoRepo), new(mockStore), 12)

	_, err := svc.Upload(context.Background(), "o1", "culata", nil)

	assert.ErrorIs(t, err, ErrCategoriaInvalida)
}

func TestServiceUpload_RejectsNonImage(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{ID: "o1"}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{}, nil)

	svc := NewService(ordenes, repo, new(mockStore), 12)
	_, err := svc.Upload(context.Background(), "o1", "block", []*multipart.FileHeader{
		imageHeader(t, "notas.pdf", "application/pdf"),
	})

	assert.ErrorIs(t, err, ErrTipoArchivo)
}

func TestServiceUpload_EnforcesCategoryLimit(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)

	existentes := make([]domain.OrdenFoto, 12)
	for i := range existentes {
		existentes[i] = domain.OrdenFoto{OrdenID: "o1", Categoria: "block"}
	}
	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{ID: "o1"}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return(existentes, nil)

	svc := NewService(ordenes, repo, new(mockStore), 12)
	_, err := svc.Upload(context.Background(), "o1", "block", []*multipart.FileHeader{
		imageHeader(t, "una-mas.jpg", "image/jpeg"),
	})

	assert.ErrorIs(t, err, ErrLimiteFotos)
}

func TestServiceUpload_WritesBothShapes(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)
	store := new(mockStore)

	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID:         "o1",
		FotosBlock: json.RawMessage(`[{"bucket":"ordenes-fotos-block","path":"o1/previa.jpg","categoria":"block"}]`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{}, nil)
	store.On("Save", domain.BucketFotosBlock, mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	ordenes.On("UpdateFotos", mock.Anything, "o1", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(ordenes, repo, store, 12)
	subidas, err := svc.Upload(context.Background(), "o1", "block", []*multipart.FileHeader{
		imageHeader(t, "bloque.jpg", "image/jpeg"),
	})

	require.NoError(t, err)
	require.Len(t, subidas, 1)
	assert.Equal(t, domain.BucketFotosBlock, subidas[0].Bucket)
	assert.Equal(t, "block", subidas[0].Categoria)

	// The JSON column keeps the previous entry and gains the new one.
	call := ordenes.Calls[len(ordenes.Calls)-1]
	var entries []rawFoto
	require.NoError(t, json.Unmarshal(call.Arguments.Get(2).(json.RawMessage), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "o1/previa.jpg", entries[0].Path)
	assert.Equal(t, subidas[0].Path, entries[1].Path)

	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestServiceCleanup_DeletesBothShapesOnce(t *testing.T) {
	ordenes := new(mockOrdenReader)
	repo := new(mockFotoRepo)
	store := new(mockStore)

	// o1/a.jpg appears in both shapes; it must only be deleted once.
	ordenes.On("GetByID", mock.Anything, "o1").Return(&domain.Orden{
		ID:         "o1",
		FotosBlock: json.RawMessage(`[{"bucket":"ordenes-fotos-block","path":"o1/a.jpg"},{"path":"o1/legacy.jpg"}]`),
	}, nil)
	repo.On("ListByOrden", mock.Anything, "o1").Return([]domain.OrdenFoto{
		{Bucket: "ordenes-fotos-block", Path: "o1/a.jpg", Categoria: "block"},
	}, nil)
	store.On("Delete", "ordenes-fotos-block", "o1/a.jpg").Return(nil).Once()
	store.On("Delete", "ordenes-fotos-block", "o1/legacy.jpg").Return(nil).Once()
	repo.On("DeleteByOrden", mock.Anything, "o1").Return(nil)
	ordenes.On("UpdateFotos", mock.Anything, "o1", json.RawMessage("[]"), json.RawMessage("[]")).Return(nil)

	svc := NewService(ordenes, repo, store, 12)
	borradas, err := svc.Cleanup(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, 2, borradas)
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
	ordenes.AssertExpectations(t)
}
