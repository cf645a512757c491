package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"radiobeagle/content"
)

// RegisterScheduleRoutes registers the programming grid CRUD endpoints.
func RegisterScheduleRoutes(r *gin.Engine, store content.Store, admin gin.HandlerFunc) {
	r.GET("/api/schedule", listSchedule(store))
	r.POST("/api/schedule", admin, addScheduleItem(store))
	r.PUT("/api/schedule/:id", admin, updateScheduleItem(store))
	r.DELETE("/api/schedule/:id", admin, deleteScheduleItem(store))
}

// GET /api/schedule
func listSchedule(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.Schedule(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store_error", Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": len(items)})
	}
}

// POST /api/schedule
func addScheduleItem(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item content.ScheduleItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload", Message: err.Error()})
			return
		}

		created, err := store.AddScheduleItem(c.Request.Context(), item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store_error", Message: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
	}
}

// PUT /api/schedule/:id
func updateScheduleItem(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be numeric"})
			return
		}

		var item content.ScheduleItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload", Message: err.Error()})
			return
		}
		item.ID = id

		if err := store.UpdateScheduleItem(c.Request.Context(), item); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
	}
}

// DELETE /api/schedule/:id
func deleteScheduleItem(store content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be numeric"})
			return
		}

		if err := store.DeleteScheduleItem(c.Request.Context(), id); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
