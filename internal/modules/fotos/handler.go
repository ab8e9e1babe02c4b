package fotos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

type Handler struct {
	resolver    *Resolver
	service     *Service
	maxFotoSize int64
}

func NewHandler(resolver *Resolver, service *Service, maxFotoSize int64) *Handler {
	return &Handler{resolver: resolver, service: service, maxFotoSize: maxFotoSize}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ordenes/:id/fotos", h.List)
	rg.POST("/ordenes/:id/fotos", h.Upload)
	rg.DELETE("/ordenes/:id/fotos", h.Cleanup)
}

// List responds with the resolver's wire format directly: the board UI
// consumes orden_id, fotos and debug as-is. Signed URLs must never be cached.
func (h *Handler) List(c *gin.Context) {
	ordenID := c.Param("id")
	if ordenID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orden id is required"})
		return
	}

	c.Header("Cache-Control", "no-store")

	result, err := h.resolver.Resolve(c.Request.Context(), ordenID)
	if err != nil {
		if errors.Is(err, ErrOrdenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "orden not found"})
			return
		}
		// Support reads this straight off the board UI, so the lookup
		// failure travels with its detail string.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "failed to resolve photos",
			"detail": err.Error(),
			"debug":  ResolveDebug{OrdenID: ordenID},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) Upload(c *gin.Context) {
	ordenID := c.Param("id")
	categoria := c.PostForm("categoria")
	if categoria == "" {
		categoria = c.Query("categoria")
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}
	files := form.File["fotos"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No files uploaded")
		return
	}
	for _, fh := range files {
		if fh.Size > h.maxFotoSize {
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Photo exceeds the size limit")
			return
		}
	}

	subidas, err := h.service.Upload(c.Request.Context(), ordenID, categoria, files)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrdenNotFound):
			response.Error(c, http.StatusNotFound, "ORDEN_NOT_FOUND", "Order not found")
		case errors.Is(err, ErrCategoriaInvalida):
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORIA", "categoria must be block or cabezote")
		case errors.Is(err, ErrLimiteFotos):
			response.Error(c, http.StatusBadRequest, "LIMITE_FOTOS", "Photo limit reached for this category")
		case errors.Is(err, ErrTipoArchivo):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only image files are accepted")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store photos")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"fotos": subidas})
}

func (h *Handler) Cleanup(c *gin.Context) {
	borradas, err := h.service.Cleanup(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrdenNotFound) {
			response.Error(c, http.StatusNotFound, "ORDEN_NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CLEANUP_FAILED", "Failed to delete photos")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"borradas": borradas})
}
