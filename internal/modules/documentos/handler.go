package documentos

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

type Handler struct {
	service *Service
	maxSize int64
}

func NewHandler(service *Service, maxSize int64) *Handler {
	return &Handler{service: service, maxSize: maxSize}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	rg.GET("/documentos/:bucket", h.List)
	rg.POST("/documentos/:bucket", h.Upload)

	admin.DELETE("/documentos/:bucket/*path", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context(), c.Param("bucket"))
	if err != nil {
		if errors.Is(err, ErrBucketInvalido) {
			response.Error(c, http.StatusBadRequest, "INVALID_BUCKET", "Unknown document bucket")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list documents")
		return
	}

	// Listings embed signed URLs; they must not outlive the tokens.
	c.Header("Cache-Control", "no-store")
	response.Success(c, http.StatusOK, gin.H{"documentos": docs})
}

func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}
	files := form.File["documentos"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No files uploaded")
		return
	}
	for _, fh := range files {
		if fh.Size > h.maxSize {
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Document exceeds the size limit")
			return
		}
	}

	subidos, err := h.service.Upload(c.Request.Context(), c.Param("bucket"), files)
	if err != nil {
		switch {
		case errors.Is(err, ErrBucketInvalido):
			response.Error(c, http.StatusBadRequest, "INVALID_BUCKET", "Unknown document bucket")
		case errors.Is(err, ErrTipoArchivo):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only PDF files are accepted")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store documents")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"documentos": subidos})
}

func (h *Handler) Delete(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	err := h.service.Delete(c.Request.Context(), c.Param("bucket"), path)
	if err != nil {
		switch {
		case errors.Is(err, ErrBucketInvalido):
			response.Error(c, http.StatusBadRequest, "INVALID_BUCKET", "Unknown document bucket")
		case errors.Is(err, ErrDocumentoNotFound):
			response.Error(c, http.StatusNotFound, "DOCUMENTO_NOT_FOUND", "Document not found")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete document")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
