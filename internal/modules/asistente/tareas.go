package asistente

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TareaGenerator produces a structured task from a free-form description.
type TareaGenerator interface {
	GenerarTarea(ctx context.Context, descripcion string) (*Tarea, error)
}

const tareaPrompt = `Eres el planificador del taller de rectificación. A partir de la
descripción, genera una tarea de trabajo como JSON con exactamente estos campos:
{"title": string, "description": string, "priority": "urgente"|"alta"|"media"|"baja",
"estimated_time": string, "steps": [string]}. Responde solo el JSON.

Descripción: %s`

// GeminiTareas generates tasks with the Gemini API.
type GeminiTareas struct {
	client *genai.Client
	model  string
}

func NewGeminiTareas(ctx context.Context, apiKey, model string) (*GeminiTareas, error) {
	if apiKey == "" {
		return nil, ErrSinClave
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiTareas{client: client, model: model}, nil
}

func (g *GeminiTareas) GenerarTarea(ctx context.Context, descripcion string) (*Tarea, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(tareaPrompt, descripcion), genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	return parseTarea(result.Text())
}

// parseTarea decodes the model output, tolerating a markdown code fence
// around the JSON.
func parseTarea(text string) (*Tarea, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var t Tarea
	if err := json.Unmarshal([]byte(text), &t); err != nil {
		return nil, fmt.Errorf("task output is not valid JSON: %w", err)
	}
	if t.Title == "" {
		return nil, fmt.Errorf("task output is missing a title")
	}
	if t.Steps == nil {
		t.Steps = []string{}
	}
	return &t, nil
}
