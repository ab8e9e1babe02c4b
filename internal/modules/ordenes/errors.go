package ordenes

import "errors"

var (
	ErrValidation    = errors.New("invalid order data")
	ErrOrdenNotFound = errors.New("order not found")
)
