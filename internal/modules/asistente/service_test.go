package asistente

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Chat_PrependsSystemHint(t *testing.T) {
	var got upstreamRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Claro, reviso la orden."}}]}`))
	}))
	defer upstream.Close()

	svc := NewService(upstream.URL, "test-key", "gpt-4.1-mini")
	content, err := svc.Chat(context.Background(), []Mensaje{
		{Role: "user", Content: "¿Cómo va mi motor?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Claro, reviso la orden.", content)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, systemHint, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, 0.4, got.Temperature)
	assert.Equal(t, 300, got.MaxTokens)
	assert.Equal(t, "gpt-4.1-mini", got.Model)
}

func TestService_Chat_PassesUpstreamStatusThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer upstream.Close()

	svc := NewService(upstream.URL, "test-key", "gpt-4.1-mini")
	_, err := svc.Chat(context.Background(), []Mensaje{{Role: "user", Content: "hola"}})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusTooManyRequests, upErr.Status)
}

func TestService_Chat_NoKeyConfigured(t *testing.T) {
	svc := NewService("http://unused", "", "gpt-4.1-mini")

	_, err := svc.Chat(context.Background(), []Mensaje{{Role: "user", Content: "hola"}})

	assert.ErrorIs(t, err, ErrSinClave)
}

func TestParseTarea_StripsCodeFence(t *testing.T) {
	raw := "```json\n{\"title\":\"Rectificar block\",\"description\":\"d\",\"priority\":\"alta\",\"estimated_time\":\"2 días\",\"steps\":[\"medir\",\"rectificar\"]}\n```"

	tarea, err := parseTarea(raw)

	require.NoError(t, err)
	assert.Equal(t, "Rectificar block", tarea.Title)
	assert.Equal(t, []string{"medir", "rectificar"}, tarea.Steps)
}

func TestParseTarea_RejectsGarbage(t *testing.T) {
	_, err := parseTarea("no soy json")
	assert.Error(t, err)

	_, err = parseTarea(`{"description":"sin titulo"}`)
	assert.Error(t, err)
}
