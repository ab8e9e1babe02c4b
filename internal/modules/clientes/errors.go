package clientes

import "errors"

var (
	ErrClienteNotFound = errors.New("client not found")
	ErrEmailDuplicado  = errors.New("client email already registered")
)
