package ordenes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rectificadora/internal/domain"
	"rectificadora/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	rg.GET("/ordenes", h.List)
	rg.POST("/ordenes", h.Create)
	rg.GET("/ordenes/tablero", h.Tablero)
	rg.GET("/ordenes/ws", h.ServeWS)
	rg.GET("/ordenes/:id", h.Get)
	rg.PATCH("/ordenes/:id", h.Update)
	rg.PATCH("/ordenes/:id/finalizar", h.Finalizar)

	admin.DELETE("/ordenes/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ordenes": all})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrdenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	// Only admins set prices at intake.
	if req.Precio != nil && c.GetString("role") != string(domain.RoleAdmin) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admins can set a price")
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"orden": o})
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrdenNotFound) {
			response.Error(c, http.StatusNotFound, "ORDEN_NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orden": o})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateOrdenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	if req.Precio != nil && c.GetString("role") != string(domain.RoleAdmin) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admins can change a price")
		return
	}

	o, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrdenNotFound):
			response.Error(c, http.StatusNotFound, "ORDEN_NOT_FOUND", "Order not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orden": o})
}

func (h *Handler) Finalizar(c *gin.Context) {
	o, err := h.service.Finalizar(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrdenNotFound) {
			response.Error(c, http.StatusNotFound, "ORDEN_NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to finalize order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orden": o})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrOrdenNotFound) {
			response.Error(c, http.StatusNotFound, "ORDEN_NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Tablero(c *gin.Context) {
	board, err := h.service.Tablero(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build board")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tablero": board})
}

// ServeWS upgrades the connection and keeps it registered until the client
// hangs up. The feed is push-only; inbound frames are discarded.
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("msg=ws_upgrade_failed error=%v", err)
		return
	}

	h.hub.Register(conn)
	log.Printf("msg=ws_connected conexiones=%d", h.hub.ConnectionCount())
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
