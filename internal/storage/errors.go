package storage

import "errors"

var (
	ErrInvalidRef   = errors.New("storage: bucket and path must be non-empty")
	ErrUnsafePath   = errors.New("storage: path escapes bucket")
	ErrInvalidToken = errors.New("storage: invalid or expired access token")
	ErrNotFound     = errors.New("storage: object not found")
)
