package documentos

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"rectificadora/internal/storage"
)

// Buckets of the document library: quotes sent to clients plus the part
// catalogs and service guides shared with the floor.
const (
	BucketProformas = "proformas"
	BucketCatalogos = "catalogos"
	BucketGuias     = "guias"
)

var bucketsValidos = map[string]bool{
	BucketProformas: true,
	BucketCatalogos: true,
	BucketGuias:     true,
}

// Documento is one library entry with a fresh signed download URL. Nothing is
// persisted outside the blob store; the bucket listing is the catalog.
type Documento struct {
	Bucket        string    `json:"bucket"`
	Path          string    `json:"path"`
	Nombre        string    `json:"nombre"`
	Size          int64     `json:"size"`
	ActualizadoEn time.Time `json:"actualizado_en"`
	URL           string    `json:"url,omitempty"`
}

type Service struct {
	store  BlobStore
	signer storage.URLSigner
	ttl    time.Duration
}

func NewService(store BlobStore, signer storage.URLSigner, ttl time.Duration) *Service {
	return &Service{store: store, signer: signer, ttl: ttl}
}

// List returns the bucket's documents, newest first. Signing failures drop
// the affected entry and are logged, same tolerance as photo resolution.
func (s *Service) List(ctx context.Context, bucket string) ([]Documento, error) {
	if !bucketsValidos[bucket] {
		return nil, ErrBucketInvalido
	}

	objetos, err := s.store.List(bucket)
	if err != nil {
		return nil, err
	}
	sort.Slice(objetos, func(i, j int) bool {
		return objetos[i].ModifiedAt.After(objetos[j].ModifiedAt)
	})

	docs := make([]Documento, 0, len(objetos))
	for _, o := range objetos {
		url, err := s.signer.SignedURL(bucket, o.Path, s.ttl)
		if err != nil {
			log.Printf("msg=documento_sign_failed bucket=%s path=%s error=%v", bucket, o.Path, err)
			continue
		}
		docs = append(docs, Documento{
			Bucket:        bucket,
			Path:          o.Path,
			Nombre:        nombreDe(o.Path),
			Size:          o.Size,
			ActualizadoEn: o.ModifiedAt,
			URL:           url,
		})
	}
	return docs, nil
}

// Upload stores PDFs under a timestamp-prefixed path so repeated uploads of
// the same file never collide.
func (s *Service) Upload(ctx context.Context, bucket string, files []*multipart.FileHeader) ([]Documento, error) {
	if !bucketsValidos[bucket] {
		return nil, ErrBucketInvalido
	}
	for _, fh := range files {
		if !esPDF(fh) {
			return nil, ErrTipoArchivo
		}
	}

	subidos := make([]Documento, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}

		nombre := sanitizarNombre(fh.Filename)
		path := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), nombre)
		err = s.store.Save(bucket, path, src)
		_ = src.Close()
		if err != nil {
			return nil, err
		}

		doc := Documento{
			Bucket:        bucket,
			Path:          path,
			Nombre:        nombre,
			Size:          fh.Size,
			ActualizadoEn: time.Now(),
		}
		if url, err := s.signer.SignedURL(bucket, path, s.ttl); err == nil {
			doc.URL = url
		} else {
			log.Printf("msg=documento_sign_failed bucket=%s path=%s error=%v", bucket, path, err)
		}
		subidos = append(subidos, doc)
	}
	return subidos, nil
}

func (s *Service) Delete(ctx context.Context, bucket, path string) error {
	if !bucketsValidos[bucket] {
		return ErrBucketInvalido
	}
	if err := s.store.Delete(bucket, path); err != nil {
		// A malformed or escaping path names nothing we ever stored.
		if errors.Is(err, storage.ErrNotFound) ||
			errors.Is(err, storage.ErrInvalidRef) ||
			errors.Is(err, storage.ErrUnsafePath) {
			return ErrDocumentoNotFound
		}
		return err
	}
	return nil
}

func esPDF(fh *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return true
	}
	return strings.EqualFold(fh.Header.Get("Content-Type"), "application/pdf")
}

var nombreInvalido = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizarNombre reduces an uploaded filename to a safe storage segment.
func sanitizarNombre(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	base = nombreInvalido.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		return "documento.pdf"
	}
	return base
}

// nombreDe strips the timestamp prefix Upload adds, recovering the display
// name for listings.
func nombreDe(path string) string {
	base := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		base = path[i+1:]
	}
	if i := strings.Index(base, "-"); i > 0 {
		if _, ok := soloDigitos(base[:i]); ok {
			return base[i+1:]
		}
	}
	return base
}

func soloDigitos(s string) (string, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return s, false
		}
	}
	return s, s != ""
}
