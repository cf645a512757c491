package nowplaying

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Fallbacks for metadata the stream does not announce.
const (
	UnknownArtist = "Artista Desconocido"
	UnknownTitle  = "Título Desconocido"
)

// Track is one song announced by the stream.
type Track struct {
	Artist string    `json:"artist"`
	Title  string    `json:"title"`
	Time   time.Time `json:"time"`
}

// Source exposes whatever the stream is currently playing.
type Source interface {
	Current(ctx context.Context) (Track, error)
}

// HTTPSource polls a stream-metadata JSON endpoint. Providers either send
// separate artist/title fields or a single "Artist - Title" string; both
// shapes are accepted.
type HTTPSource struct {
	client *http.Client
	url    string
}

func NewHTTPSource(metadataURL string) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    metadataURL,
	}
}

func (s *HTTPSource) Current(ctx context.Context) (Track, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Track{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Track{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Track{}, fmt.Errorf("metadata endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Artist string `json:"artist"`
		Title  string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Track{}, fmt.Errorf("failed to decode metadata: %w", err)
	}

	if payload.Artist == "" && strings.Contains(payload.Title, " - ") {
		return ParseTrackText(payload.Title), nil
	}

	track := Track{Artist: payload.Artist, Title: payload.Title, Time: time.Now()}
	if track.Artist == "" {
		track.Artist = UnknownArtist
	}
	if track.Title == "" {
		track.Title = UnknownTitle
	}
	return track, nil
}

// ParseTrackText splits the conventional "Artist - Title" announcement.
// Titles may themselves contain " - ", so only the first separator counts.
func ParseTrackText(text string) Track {
	parts := strings.Split(text, " - ")

	artist := strings.TrimSpace(parts[0])
	title := strings.TrimSpace(strings.Join(parts[1:], " - "))

	if artist == "" {
		artist = UnknownArtist
	}
	if title == "" {
		title = UnknownTitle
	}
	return Track{Artist: artist, Title: title, Time: time.Now()}
}
