package fotos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rectificadora/internal/domain"
	"rectificadora/internal/storage"
)

// Service handles photo intake and the explicit cleanup operation. Uploads
// are written in both storage shapes: a normalized orden_fotos row and an
// appended entry in the order's JSON column, so old readers keep working.
type Service struct {
	ordenes         OrdenReader
	fotos           FotoRepositoryInterface
	store           storage.Store
	maxPorCategoria int
}

func NewService(ordenes OrdenReader, fotos FotoRepositoryInterface, store storage.Store, maxPorCategoria int) *Service {
	return &Service{
		ordenes:         ordenes,
		fotos:           fotos,
		store:           store,
		maxPorCategoria: maxPorCategoria,
	}
}

func bucketFor(categoria string) (string, error) {
	switch categoria {
	case domain.CategoriaBlock:
		return domain.BucketFotosBlock, nil
	case domain.CategoriaCabezote:
		return domain.BucketFotosCabezote, nil
	default:
		return "", ErrCategoriaInvalida
	}
}

func (s *Service) Upload(ctx context.Context, ordenID, categoria string, files []*multipart.FileHeader) ([]domain.OrdenFoto, error) {
	categoria = strings.ToLower(strings.TrimSpace(categoria))
	bucket, err := bucketFor(categoria)
	if err != nil {
		return nil, err
	}

	orden, err := s.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrdenNotFound
		}
		return nil, err
	}

	existentes, err := s.fotos.ListByOrden(ctx, ordenID)
	if err != nil {
		return nil, err
	}
	enCategoria := 0
	for _, f := range existentes {
		if f.Categoria == categoria {
			enCategoria++
		}
	}
	if enCategoria+len(files) > s.maxPorCategoria {
		return nil, ErrLimiteFotos
	}

	for _, fh := range files {
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			return nil, ErrTipoArchivo
		}
	}

	subidas := make([]domain.OrdenFoto, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}

		path := fmt.Sprintf("%s/%s%s", ordenID, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
		err = s.store.Save(bucket, path, src)
		_ = src.Close()
		if err != nil {
			return nil, err
		}

		foto := domain.OrdenFoto{
			OrdenID:   ordenID,
			Bucket:    bucket,
			Path:      path,
			Categoria: categoria,
			CreatedAt: time.Now(),
		}
		if err := s.fotos.Create(ctx, &foto); err != nil {
			return nil, err
		}
		subidas = append(subidas, foto)
	}

	// Second shape: append to the order's JSON column.
	block, cabezote := orden.FotosBlock, orden.FotosCabezote
	if categoria == domain.CategoriaBlock {
		block = appendColumn(block, subidas)
	} else {
		cabezote = appendColumn(cabezote, subidas)
	}
	if err := s.ordenes.UpdateFotos(ctx, ordenID, block, cabezote); err != nil {
		return nil, err
	}

	return subidas, nil
}

// Cleanup deletes every stored photo for an order, from both shapes. Order
// deletion never calls this implicitly; it is its own endpoint.
func (s *Service) Cleanup(ctx context.Context, ordenID string) (int, error) {
	orden, err := s.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrOrdenNotFound
		}
		return 0, err
	}

	vistos := map[string]bool{}
	var refs []candidato

	rows, err := s.fotos.ListByOrden(ctx, ordenID)
	if err == nil {
		for _, row := range rows {
			if row.Bucket == "" || row.Path == "" {
				continue
			}
			key := row.Bucket + "/" + row.Path
			if !vistos[key] {
				vistos[key] = true
				refs = append(refs, candidato{bucket: row.Bucket, path: row.Path})
			}
		}
	}
	for _, c := range columnCandidatos(orden.FotosBlock, domain.BucketFotosBlock, domain.CategoriaBlock) {
		key := c.bucket + "/" + c.path
		if !vistos[key] {
			vistos[key] = true
			refs = append(refs, c)
		}
	}
	for _, c := range columnCandidatos(orden.FotosCabezote, domain.BucketFotosCabezote, domain.CategoriaCabezote) {
		key := c.bucket + "/" + c.path
		if !vistos[key] {
			vistos[key] = true
			refs = append(refs, c)
		}
	}

	borradas := 0
	for _, c := range refs {
		if err := s.store.Delete(c.bucket, c.path); err != nil {
			log.Printf("msg=foto_delete_failed orden_id=%s bucket=%s path=%s error=%v", ordenID, c.bucket, c.path, err)
			continue
		}
		borradas++
	}

	if err := s.fotos.DeleteByOrden(ctx, ordenID); err != nil {
		return borradas, err
	}
	vacio := json.RawMessage("[]")
	if err := s.ordenes.UpdateFotos(ctx, ordenID, vacio, vacio); err != nil {
		return borradas, err
	}

	return borradas, nil
}

// appendColumn adds the uploaded photos to a JSON column, preserving whatever
// entries are already there. A corrupt column restarts as an empty array.
func appendColumn(raw json.RawMessage, nuevas []domain.OrdenFoto) json.RawMessage {
	var entries []json.RawMessage
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &entries)
	}

	for _, f := range nuevas {
		entry, err := json.Marshal(rawFoto{Bucket: f.Bucket, Path: f.Path, Categoria: f.Categoria})
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return raw
	}
	return out
}
