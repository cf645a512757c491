package localnews

import (
	"context"
	"log"
	"sync"
	"time"
)

// Service runs the fetch/parse/merge pipeline and owns the latest merged
// snapshot. Refreshes are serialized: a refresh requested while one is
// already running waits for its turn instead of racing it, so the snapshot
// can never be overwritten by an older cycle.
type Service struct {
	fetcher *Fetcher
	sources []FeedSource
	cache   *SnapshotCache

	refreshMu sync.Mutex

	mu        sync.RWMutex
	articles  []Article
	refreshed time.Time
}

// NewService wires the pipeline. cache may be nil.
func NewService(fetcher *Fetcher, sources []FeedSource, cache *SnapshotCache) *Service {
	return &Service{fetcher: fetcher, sources: sources, cache: cache}
}

// Sources returns the configured feed list.
func (s *Service) Sources() []FeedSource {
	out := make([]FeedSource, len(s.sources))
	copy(out, s.sources)
	return out
}

// Articles returns a copy of the current merged snapshot.
func (s *Service) Articles() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// LastRefreshed reports when the snapshot was last replaced. The zero time
// means no cycle has completed yet.
func (s *Service) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}

// Filtered applies the listing filters to the current snapshot.
func (s *Service) Filtered(opts FilterOptions, now time.Time) []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.articles, opts, now)
}

// Refresh runs one full aggregation cycle and replaces the snapshot with
// its result. There is no fatal path: the worst outcome is an empty list,
// which the caller renders as "no results". The fresh list is returned.
func (s *Service) Refresh(ctx context.Context) []Article {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	payloads := s.fetcher.FetchAll(ctx, s.sources)

	batches := make([][]Article, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Body == "" {
			continue
		}
		batches = append(batches, ParseFeed(payload.Body, payload.Source.Name))
	}

	merged := Merge(batches)
	log.Printf("localnews: refreshed %d articles from %d feeds", len(merged), len(s.sources))

	s.mu.Lock()
	s.articles = merged
	s.refreshed = time.Now()
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Store(ctx, merged); err != nil {
			log.Printf("localnews: snapshot cache store failed: %v", err)
		}
	}

	return s.Articles()
}

// WarmUp seeds the snapshot at startup: from the shared cache when one is
// configured and warm, otherwise by running a refresh cycle.
func (s *Service) WarmUp(ctx context.Context) {
	if s.cache != nil {
		cached, err := s.cache.Load(ctx)
		if err != nil {
			log.Printf("localnews: snapshot cache load failed: %v", err)
		}
		if len(cached) > 0 {
			s.mu.Lock()
			s.articles = cached
			s.refreshed = time.Now()
			s.mu.Unlock()
			log.Printf("localnews: restored %d articles from cache", len(cached))
			return
		}
	}
	s.Refresh(ctx)
}
