package api

import (
	"github.com/gin-gonic/gin"

	"radiobeagle/content"
	"radiobeagle/localnews"
	"radiobeagle/nowplaying"
	"radiobeagle/storage"
)

// Deps are the services the HTTP surface exposes. Images and NowPlaying
// may be nil; their routes then answer 503.
type Deps struct {
	News       *localnews.Service
	Content    content.Store
	Images     *storage.ImageStore
	NowPlaying *nowplaying.Tracker
	AdminToken string
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	admin := RequireAdmin(deps.AdminToken)

	RegisterHealthRoutes(r)
	RegisterNewsRoutes(r, deps.News)
	RegisterReaderRoutes(r)
	RegisterBannerRoutes(r, deps.Content, admin)
	RegisterAdRoutes(r, deps.Content, admin)
	RegisterScheduleRoutes(r, deps.Content, admin)
	RegisterImageRoutes(r, deps.Images, admin)
	RegisterNowPlayingRoutes(r, deps.NowPlaying)
	return r
}
