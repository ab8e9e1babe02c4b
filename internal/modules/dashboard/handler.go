package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/resumen", h.Resumen)
}

func (h *Handler) Resumen(c *gin.Context) {
	r, err := h.service.Resumen(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resumen": r})
}
