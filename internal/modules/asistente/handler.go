package asistente

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

type Handler struct {
	service *Service
	tareas  TareaGenerator
}

func NewHandler(service *Service, tareas TareaGenerator) *Handler {
	return &Handler{service: service, tareas: tareas}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/asistente", h.Chat)
	rg.POST("/tareas/generar", h.GenerarTarea)
}

// Chat keeps the flat {content} / {error} wire format the assistant widget
// expects, instead of the usual envelope.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages is required"})
		return
	}

	content, err := h.service.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("msg=asistente_upstream_error status=%d", upstream.Status)
			c.JSON(upstream.Status, gin.H{"error": "assistant request failed"})
			return
		}
		if errors.Is(err, ErrSinClave) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant is not configured"})
			return
		}
		log.Printf("msg=asistente_error error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

func (h *Handler) GenerarTarea(c *gin.Context) {
	if h.tareas == nil {
		response.Error(c, http.StatusInternalServerError, "NOT_CONFIGURED", "Task generation is not configured")
		return
	}

	var req GenerarTareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "descripcion is required")
		return
	}

	tarea, err := h.tareas.GenerarTarea(c.Request.Context(), req.Descripcion)
	if err != nil {
		log.Printf("msg=tarea_generar_error error=%v", err)
		response.Error(c, http.StatusBadGateway, "GENERATION_FAILED", "Failed to generate task")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tarea": tarea})
}
