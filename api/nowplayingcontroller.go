package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"radiobeagle/nowplaying"
)

// RegisterNowPlayingRoutes registers the current-track endpoints.
func RegisterNowPlayingRoutes(r *gin.Engine, tracker *nowplaying.Tracker) {
	g := r.Group("/api/nowplaying")
	g.GET("", currentTrack(tracker))
	g.GET("/history", trackHistory(tracker))
}

// GET /api/nowplaying
func currentTrack(tracker *nowplaying.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "nowplaying_disabled",
				Message: "No stream metadata source is configured",
			})
			return
		}

		track, ok := tracker.Current()
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": true, "playing": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "playing": true, "track": track})
	}
}

// GET /api/nowplaying/history
func trackHistory(tracker *nowplaying.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "nowplaying_disabled",
				Message: "No stream metadata source is configured",
			})
			return
		}

		history := tracker.History()
		c.JSON(http.StatusOK, gin.H{"success": true, "data": history, "count": len(history)})
	}
}
