package asistente

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// systemHint pins the assistant to the workshop domain. It is prepended to
// every conversation before proxying.
const systemHint = "Eres el asistente del taller de rectificación de motores. " +
	"Responde en español, de forma breve y práctica, sobre órdenes de trabajo, " +
	"rectificación de blocks y cabezotes, repuestos y atención a clientes."

const (
	chatTemperature = 0.4
	chatMaxTokens   = 300
)

// Service proxies chat conversations to an OpenAI-compatible completions API.
type Service struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewService(baseURL, apiKey, model string) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type upstreamRequest struct {
	Model       string    `json:"model"`
	Messages    []Mensaje `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type upstreamResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *Service) Chat(ctx context.Context, messages []Mensaje) (string, error) {
	if s.apiKey == "" {
		return "", ErrSinClave
	}

	payload := upstreamRequest{
		Model:       s.model,
		Messages:    append([]Mensaje{{Role: "system", Content: systemHint}}, messages...),
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed upstreamResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("upstream returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
