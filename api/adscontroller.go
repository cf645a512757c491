package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"radiobeagle/content"
)

// RegisterAdRoutes registers the ad carousel CRUD endpoints.
func RegisterAdRoutes(r *gin.Engine, store content.Store, admin gin.HandlerFunc) {
	r.GET("/api/ads", listAds(store))
	r.POST("/api/ads", admin, addAd(store))
	r.PUT("/api/ads/:id", admin, updateAd(store))
	r.DELETE("/api/ads/:id", admin, deleteAd(store))
}

// GET /api/ads
func listAds(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ads, err := store.Ads(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store_error", Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": ads, "count": len(ads)})
	}
}

// POST /api/ads
func addAd(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ad content.Ad
		if err := c.ShouldBindJSON(&ad); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload", Message: err.Error()})
			return
		}

		created, err := store.AddAd(c.Request.Context(), ad)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store_error", Message: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
	}
}

// PUT /api/ads/:id
func updateAd(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be numeric"})
			return
		}

		var ad content.Ad
		if err := c.ShouldBindJSON(&ad); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload", Message: err.Error()})
			return
		}
		ad.ID = id

		if err := store.UpdateAd(c.Request.Context(), ad); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": ad})
	}
}

// DELETE /api/ads/:id
func deleteAd(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be numeric"})
			return
		}

		if err := store.DeleteAd(c.Request.Context(), id); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: "No record with that id"})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store_error", Message: err.Error()})
}
