package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"radiobeagle/reader"
)

// RegisterReaderRoutes registers the readable-article endpoint used by the
// in-site news reader.
func RegisterReaderRoutes(r *gin.Engine) {
	r.GET("/api/news/reader", extractArticle)
}

// GET /api/news/reader?url=https://...
func extractArticle(c *gin.Context) {
	articleURL := c.Query("url")
	if articleURL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_url",
			Message: "url query parameter is required",
		})
		return
	}

	article, err := reader.Extract(articleURL)
	if err != nil {
		status := http.StatusBadGateway
		code := "extraction_failed"
		if errors.Is(err, reader.ErrInvalidURL) {
			status = http.StatusBadRequest
			code = "invalid_url"
		}
		c.JSON(status, ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": article})
}
