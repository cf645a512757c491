package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"radiobeagle/storage"
)

// maxImageSize caps uploads at 10 MiB.
const maxImageSize = 10 << 20

// RegisterImageRoutes registers the admin image upload endpoint.
func RegisterImageRoutes(r *gin.Engine, images *storage.ImageStore, admin gin.HandlerFunc) {
	r.POST("/api/images", admin, uploadImage(images))
}

// POST /api/images — multipart form with a "file" field. Responds with
// the public URL to embed in banner or ad records.
func uploadImage(images *storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if images == nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "storage_disabled",
				Message: "Image storage is not configured",
			})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "missing_file",
				Message: "multipart field \"file\" is required",
			})
			return
		}
		if header.Size > maxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "file_too_large",
				Message: "images are limited to 10 MiB",
			})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable_file", Message: err.Error()})
			return
		}
		defer file.Close()

		url, err := images.Upload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upload_failed", Message: err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
	}
}
