package storage

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

// Handler serves signed-URL reads. Everything else about blobs goes through
// the application API; this endpoint only honors valid tokens.
type Handler struct {
	local *Local
}

func NewHandler(local *Local) *Handler {
	return &Handler{local: local}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/storage/:bucket/*path", h.Serve)
}

func (h *Handler) Serve(c *gin.Context) {
	bucket := c.Param("bucket")
	path := strings.TrimPrefix(c.Param("path"), "/")
	token := c.Query("token")

	if token == "" {
		response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Signed token required")
		return
	}
	if err := h.local.VerifyToken(token, bucket, path); err != nil {
		response.Error(c, http.StatusForbidden, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	abs, err := h.local.AbsPath(bucket, path)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PATH", "Invalid object reference")
		return
	}
	if _, err := os.Stat(abs); err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Object not found")
		return
	}

	c.Header("Cache-Control", "private, max-age=60")
	c.File(abs)
}
