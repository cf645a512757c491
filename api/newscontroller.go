package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"radiobeagle/localnews"
)

// RegisterNewsRoutes registers the local news aggregation endpoints.
func RegisterNewsRoutes(r *gin.Engine, svc *localnews.Service) {
	g := r.Group("/api/news")
	g.GET("/local", listLocalNews(svc))
	g.POST("/local/refresh", refreshLocalNews(svc))
	g.GET("/local/sources", listSources(svc))
}

// listLocalNews serves the current snapshot filtered by source, date
// bucket and free-text search.
// GET /api/news/local?source=El%20Pingüino&range=week&q=radio
func listLocalNews(svc *localnews.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := localnews.FilterOptions{
			Source: c.DefaultQuery("source", localnews.SourceAll),
			Range:  c.DefaultQuery("range", localnews.RangeAll),
			Query:  c.Query("q"),
		}

		if !localnews.ValidRange(opts.Range) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_range",
				Message: "range must be one of all, today, week, month",
			})
			return
		}

		articles := svc.Filtered(opts, time.Now())
		resp := NewsResponse{
			Success: true,
			Data:    articles,
			Count:   len(articles),
		}
		if opts.Source != localnews.SourceAll {
			resp.Source = opts.Source
		}
		c.JSON(http.StatusOK, resp)
	}
}

// refreshLocalNews runs a full aggregation cycle before answering. Feed
// failures degrade to fewer articles, never to an error status.
// POST /api/news/local/refresh
func refreshLocalNews(svc *localnews.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles := svc.Refresh(c.Request.Context())
		c.JSON(http.StatusOK, NewsResponse{
			Success: true,
			Data:    articles,
			Count:   len(articles),
		})
	}
}

// GET /api/news/local/sources
func listSources(svc *localnews.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, SourcesResponse{
			Success: true,
			Sources: svc.Sources(),
		})
	}
}
