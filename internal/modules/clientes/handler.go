package clientes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	rg.GET("/clientes", h.List)
	rg.POST("/clientes", h.Create)
	rg.GET("/clientes/:id/ordenes", h.Historial)

	admin.DELETE("/clientes/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clientes": all})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cliente, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailDuplicado) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "A client with this email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create client")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"cliente": cliente})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrClienteNotFound) {
			response.Error(c, http.StatusNotFound, "CLIENTE_NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete client")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Historial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client id")
		return
	}

	ordenes, err := h.service.Historial(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrClienteNotFound) {
			response.Error(c, http.StatusNotFound, "CLIENTE_NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load client history")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ordenes": ordenes})
}
