package asistente

import (
	"errors"
	"fmt"
)

var ErrSinClave = errors.New("assistant API key not configured")

// UpstreamError carries the status the external API answered with, so the
// handler can pass it through instead of flattening everything to 500.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}
