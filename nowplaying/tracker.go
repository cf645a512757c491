package nowplaying

import (
	"context"
	"log"
	"sync"
	"time"
)

// HistoryLimit caps the number of remembered tracks.
const HistoryLimit = 20

// DefaultPollInterval is how often the metadata source is asked for the
// current track.
const DefaultPollInterval = 30 * time.Second

// TrackPublisher receives every track change, e.g. to fan it out to
// downstream consumers. Implementations must be safe for concurrent use.
type TrackPublisher interface {
	Publish(track Track) error
}

// Tracker polls the metadata source and maintains the current track plus a
// capped, newest-first history. Consecutive identical announcements are
// collapsed into one entry.
type Tracker struct {
	source    Source
	interval  time.Duration
	publisher TrackPublisher

	mu      sync.RWMutex
	current *Track
	history []Track
}

// NewTracker creates a tracker. publisher may be nil.
func NewTracker(source Source, interval time.Duration, publisher TrackPublisher) *Tracker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Tracker{source: source, interval: interval, publisher: publisher}
}

// Run polls until ctx is canceled. Intended to run as a goroutine.
func (t *Tracker) Run(ctx context.Context) {
	t.poll(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.poll(ctx)
		}
	}
}

// Current returns the playing track, or false when nothing is known yet.
func (t *Tracker) Current() (Track, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == nil {
		return Track{}, false
	}
	return *t.current, true
}

// History returns the remembered tracks, newest first.
func (t *Tracker) History() []Track {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Track, len(t.history))
	copy(out, t.history)
	return out
}

func (t *Tracker) poll(ctx context.Context) {
	track, err := t.source.Current(ctx)
	if err != nil {
		log.Printf("nowplaying: poll failed: %v", err)
		return
	}

	t.mu.Lock()
	if t.current != nil && t.current.Artist == track.Artist && t.current.Title == track.Title {
		t.mu.Unlock()
		return
	}
	t.current = &track
	t.history = append([]Track{track}, t.history...)
	if len(t.history) > HistoryLimit {
		t.history = t.history[:HistoryLimit]
	}
	t.mu.Unlock()

	log.Printf("nowplaying: %s - %s", track.Artist, track.Title)

	if t.publisher != nil {
		if err := t.publisher.Publish(track); err != nil {
			log.Printf("nowplaying: publish failed: %v", err)
		}
	}
}
