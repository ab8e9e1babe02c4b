package domain

import "time"

// OrdenFoto is the normalized per-photo row. Newer orders record every upload
// here; older orders only carry the JSON columns on the orden itself.
type OrdenFoto struct {
	ID        int64     `json:"id"`
	OrdenID   string    `json:"orden_id"`
	Bucket    string    `json:"bucket"`
	Path      string    `json:"path"`
	Categoria string    `json:"categoria,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	CategoriaBlock    = "block"
	CategoriaCabezote = "cabezote"

	BucketFotosBlock    = "ordenes-fotos-block"
	BucketFotosCabezote = "ordenes-fotos-cabezote"
)
