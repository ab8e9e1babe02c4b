package documentos

import (
	"io"

	"rectificadora/internal/storage"
)

// BlobStore is the slice of the storage layer the document library needs.
type BlobStore interface {
	Save(bucket, path string, r io.Reader) error
	Delete(bucket, path string) error
	List(bucket string) ([]storage.ObjectInfo, error)
}
