package facturas

import "errors"

var (
	ErrValidation      = errors.New("invalid invoice data")
	ErrFacturaNotFound = errors.New("invoice not found")
)
