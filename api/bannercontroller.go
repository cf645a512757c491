package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"radiobeagle/content"
)

// RegisterBannerRoutes registers the site banner endpoints. Reads are
// public, the update is admin-only.
func RegisterBannerRoutes(r *gin.Engine, store content.Store, admin gin.HandlerFunc) {
	r.GET("/api/banner", getBanner(store))
	r.PUT("/api/banner", admin, updateBanner(store))
}

// GET /api/banner
func getBanner(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		banner, err := store.Banner(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "store_error",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": banner})
	}
}

// PUT /api/banner
func updateBanner(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner content.Banner
		if err := c.ShouldBindJSON(&banner); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_payload",
				Message: err.Error(),
			})
			return
		}

		if err := store.UpdateBanner(c.Request.Context(), banner); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "store_error",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": banner})
	}
}
