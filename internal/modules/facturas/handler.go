package facturas

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/facturas", h.List)
	rg.POST("/facturas", h.Create)
	rg.GET("/facturas/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list invoices")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"facturas": all})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFacturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cliente_nombre is required and total must be positive")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create invoice")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"factura": f})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice id")
		return
	}

	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFacturaNotFound) {
			response.Error(c, http.StatusNotFound, "FACTURA_NOT_FOUND", "Invoice not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load invoice")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"factura": f})
}
