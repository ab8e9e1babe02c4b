package fotos

import "errors"

var (
	ErrOrdenNotFound     = errors.New("order not found")
	ErrCategoriaInvalida = errors.New("invalid photo category")
	ErrLimiteFotos       = errors.New("photo limit reached for category")
	ErrTipoArchivo       = errors.New("file is not an image")
)
