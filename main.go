package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"radiobeagle/api"
	"radiobeagle/content"
	"radiobeagle/localnews"
	"radiobeagle/nowplaying"
	"radiobeagle/storage"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	ctx := context.Background()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	relay := os.Getenv("NEWS_RELAY_URL")
	if relay == "" {
		relay = localnews.DefaultRelay
	}
	news := localnews.NewService(
		localnews.NewFetcher(relay),
		localnews.DefaultSources,
		localnews.NewSnapshotCacheFromEnv(),
	)
	news.WarmUp(ctx)

	store, err := newContentStore(ctx)
	if err != nil {
		log.Fatalf("content store: %v", err)
	}

	images := storage.NewImageStoreFromEnv(ctx)
	if images == nil {
		log.Println("S3_BUCKET not set, image uploads disabled")
	}

	tracker := newTracker()
	if tracker != nil {
		go tracker.Run(ctx)
	} else {
		log.Println("NOWPLAYING_URL not set, now-playing tracker disabled")
	}

	r := api.NewRouter(api.Deps{
		News:       news,
		Content:    store,
		Images:     images,
		NowPlaying: tracker,
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/news/local")
	log.Println("  POST /api/news/local/refresh")
	log.Println("  GET  /api/news/local/sources")
	log.Println("  GET  /api/news/reader")
	log.Println("  GET  /api/banner        PUT /api/banner")
	log.Println("  GET  /api/ads           POST/PUT/DELETE /api/ads")
	log.Println("  GET  /api/schedule      POST/PUT/DELETE /api/schedule")
	log.Println("  POST /api/images")
	log.Println("  GET  /api/nowplaying    GET /api/nowplaying/history")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newContentStore picks Redis when REDIS_ADDR is set, otherwise an
// in-process store that resets on restart.
func newContentStore(ctx context.Context) (content.Store, error) {
	if os.Getenv("REDIS_ADDR") == "" {
		log.Println("REDIS_ADDR not set, using in-memory content store")
		return content.NewMemoryStore(), nil
	}
	return content.NewRedisStoreFromEnv(ctx)
}

// newTracker wires the stream metadata poller when NOWPLAYING_URL is set.
func newTracker() *nowplaying.Tracker {
	endpoint := os.Getenv("NOWPLAYING_URL")
	if endpoint == "" {
		return nil
	}

	var pub nowplaying.TrackPublisher
	publisher, err := nowplaying.NewKafkaPublisherFromEnv()
	if err != nil {
		log.Printf("kafka publisher unavailable, track changes stay local: %v", err)
	} else if publisher != nil {
		pub = publisher
	}

	return nowplaying.NewTracker(nowplaying.NewHTTPSource(endpoint), nowplaying.DefaultPollInterval, pub)
}
