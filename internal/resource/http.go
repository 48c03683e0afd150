package resource

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var formFields = []string{"title", "description", "category", "language", "provider", "role"}

// RegisterRoutes mounts resource operations under the provided router group.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.GET("", handler.listResources)
	group.GET("/summary", handler.getSummary)
	group.GET("/:id", handler.getResource)
	group.POST("", handler.uploadResource)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) listResources(c *gin.Context) {
	resources, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("failed to fetch resources: %v", err)
		internalError(c)
		return
	}

	if resources == nil {
		resources = []Resource{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resources})
}

func (h *httpHandler) getSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		log.Printf("failed to fetch summary: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

func (h *httpHandler) getResource(c *gin.Context) {
	// A non-numeric identifier matches no row, same as an unknown one.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resource not found"})
		return
	}

	res, obj, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resource not found"})
		case errors.Is(err, ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "File not found"})
		default:
			log.Printf("failed to fetch resource %d: %v", id, err)
			internalError(c)
		}
		return
	}

	if obj == nil {
		// no-storage mode keeps metadata only
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Files are not stored in local development environment",
			"data": gin.H{
				"resource_id": res.ID,
				"file_name":   res.FileName,
				"note":        "File download is not available in local development mode",
			},
		})
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if res.MimeType != nil && *res.MimeType != "" {
		contentType = *res.MimeType
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	contentLength := obj.ContentLength
	if res.FileSize != nil {
		contentLength = *res.FileSize
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Length", strconv.FormatInt(contentLength, 10))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	if !obj.LastModified.IsZero() {
		c.Header("Last-Modified", obj.LastModified.UTC().Format(http.TimeFormat))
	}

	if _, err := io.Copy(c.Writer, obj.Body); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
}

func (h *httpHandler) uploadResource(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	form := make(map[string]string, len(formFields))
	for _, field := range formFields {
		form[field] = c.PostForm(field)
	}

	stored, fieldErrs, err := h.service.Upload(c.Request.Context(), fileHeader, form)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		case errors.Is(err, ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File too large. Maximum size is 50MB."})
		case errors.Is(err, ErrFileTypeNotSupported):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File type not supported"})
		default:
			log.Printf("failed to upload resource: %v", err)
			internalError(c)
		}
		return
	}

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Resource uploaded successfully",
		"data":    stored,
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
}
