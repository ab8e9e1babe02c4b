package documentos

import "errors"

var (
	ErrBucketInvalido    = errors.New("unknown document bucket")
	ErrTipoArchivo       = errors.New("file is not a PDF")
	ErrDocumentoNotFound = errors.New("document not found")
)
