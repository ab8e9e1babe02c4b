package ordenes

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestHub_ConnectionCount(t *testing.T) {
	h := NewHub()
	assert.Equal(t, 0, h.ConnectionCount())

	a := &websocket.Conn{}
	b := &websocket.Conn{}

	h.Register(a)
	h.Register(b)
	assert.Equal(t, 2, h.ConnectionCount())

	// Re-registering the same connection must not double-count it.
	h.Register(a)
	assert.Equal(t, 2, h.ConnectionCount())
}

func TestHub_BroadcastWithoutConnections(t *testing.T) {
	h := NewHub()

	assert.NotPanics(t, func() {
		h.Broadcast(map[string]string{"type": "ordenes_updated"})
	})
}
