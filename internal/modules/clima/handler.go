package clima

import (
	"errors"
	"log"
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
	rg.GET("/clima", h.Actual)
}

func (h *Handler) Actual(c *gin.Context) {
	actual, err := h.service.Actual(c.Request.Context())
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("msg=clima_upstream_error status=%d", upstream.Status)
			response.Error(c, http.StatusBadGateway, "WEATHER_UNAVAILABLE", "Weather service returned an error")
			return
		}
		log.Printf("msg=clima_error error=%v", err)
		response.Error(c, http.StatusBadGateway, "WEATHER_UNAVAILABLE", "Weather service is unreachable")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clima": actual})
}
