package fotos

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"rectificadora/internal/domain"
	"rectificadora/internal/storage"
)

// FotoFirmada is one photo the client can actually fetch.
type FotoFirmada struct {
	Bucket    string `json:"bucket"`
	Path      string `json:"path"`
	Categoria string `json:"categoria,omitempty"`
	URL       string `json:"url"`
}

// ResolveDebug mirrors what the board UI shows when photos are missing, so a
// support call can tell "no photos" apart from "signing failed".
type ResolveDebug struct {
	OrdenID     string `json:"orden_id"`
	Encontradas int    `json:"encontradas"`
	Firmadas    int    `json:"firmadas"`
	Fallback    bool   `json:"fallback"`
}

type ResolveResult struct {
	OrdenID string        `json:"orden_id"`
	Fotos   []FotoFirmada `json:"fotos"`
	Debug   ResolveDebug  `json:"debug"`
}

// Resolver turns an order id into signed photo URLs. The orden_fotos table is
// the primary source; orders predating it only carry the fotos_block /
// fotos_cabezote JSON columns, which serve as fallback when the table read
// fails or returns nothing.
type Resolver struct {
	ordenes OrdenReader
	fotos   FotoRepositoryInterface
	signer  storage.URLSigner
	ttl     time.Duration
}

func NewResolver(ordenes OrdenReader, fotos FotoRepositoryInterface, signer storage.URLSigner, ttl time.Duration) *Resolver {
	return &Resolver{ordenes: ordenes, fotos: fotos, signer: signer, ttl: ttl}
}

// candidato is a photo reference before signing.
type candidato struct {
	bucket    string
	path      string
	categoria string
}

// rawFoto tolerates every shape the JSON columns have accumulated over time.
// Older rows used tipo or group instead of categoria.
type rawFoto struct {
	Bucket    string `json:"bucket"`
	Path      string `json:"path"`
	Categoria string `json:"categoria"`
	Tipo      string `json:"tipo"`
	Group     string `json:"group"`
}

func (r *Resolver) Resolve(ctx context.Context, ordenID string) (*ResolveResult, error) {
	orden, err := r.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrdenNotFound
		}
		return nil, err
	}

	candidatos, fallback := r.collect(ctx, orden)

	fotos := make([]FotoFirmada, 0, len(candidatos))
	for _, c := range candidatos {
		url, err := r.signer.SignedURL(c.bucket, c.path, r.ttl)
		if err != nil {
			log.Printf("msg=foto_sign_failed orden_id=%s bucket=%s path=%s error=%v", ordenID, c.bucket, c.path, err)
			continue
		}
		fotos = append(fotos, FotoFirmada{
			Bucket:    c.bucket,
			Path:      c.path,
			Categoria: c.categoria,
			URL:       url,
		})
	}

	return &ResolveResult{
		OrdenID: ordenID,
		Fotos:   fotos,
		Debug: ResolveDebug{
			OrdenID:     ordenID,
			Encontradas: len(candidatos),
			Firmadas:    len(fotos),
			Fallback:    fallback,
		},
	}, nil
}

// collect gathers candidates from the table, falling back to the order's JSON
// columns when the table errors or holds no rows for this order.
func (r *Resolver) collect(ctx context.Context, orden *domain.Orden) ([]candidato, bool) {
	rows, err := r.fotos.ListByOrden(ctx, orden.ID)
	if err != nil {
		log.Printf("msg=orden_fotos_read_failed orden_id=%s error=%v", orden.ID, err)
	}
	if err == nil && len(rows) > 0 {
		out := make([]candidato, 0, len(rows))
		for _, row := range rows {
			if row.Bucket == "" || row.Path == "" {
				continue
			}
			out = append(out, candidato{bucket: row.Bucket, path: row.Path, categoria: row.Categoria})
		}
		return out, false
	}

	var out []candidato
	out = append(out, columnCandidatos(orden.FotosBlock, domain.BucketFotosBlock, domain.CategoriaBlock)...)
	out = append(out, columnCandidatos(orden.FotosCabezote, domain.BucketFotosCabezote, domain.CategoriaCabezote)...)
	return out, true
}

// columnCandidatos normalizes one JSON photo column. Anything that is not an
// array counts as empty. Entries may be bare path strings or objects.
func columnCandidatos(raw json.RawMessage, defaultBucket, defaultCategoria string) []candidato {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}

	out := make([]candidato, 0, len(entries))
	for _, entry := range entries {
		var path string
		if json.Unmarshal(entry, &path) == nil {
			if path == "" {
				continue
			}
			out = append(out, candidato{bucket: defaultBucket, path: path, categoria: defaultCategoria})
			continue
		}

		var f rawFoto
		if json.Unmarshal(entry, &f) != nil || f.Path == "" {
			continue
		}
		c := candidato{bucket: f.Bucket, path: f.Path, categoria: pickCategoria(f, defaultCategoria)}
		if c.bucket == "" {
			c.bucket = defaultBucket
		}
		out = append(out, c)
	}
	return out
}

// pickCategoria resolves the category across the field names the column has
// used historically: categoria wins, then tipo, then group.
func pickCategoria(f rawFoto, fallback string) string {
	switch {
	case f.Categoria != "":
		return f.Categoria
	case f.Tipo != "":
		return f.Tipo
	case f.Group != "":
		return f.Group
	default:
		return fallback
	}
}
