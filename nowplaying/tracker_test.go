package nowplaying

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type scriptedSource struct {
	tracks []Track
	errs   []error
	calls  int
}

func (s *scriptedSource) Current(ctx context.Context) (Track, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return Track{}, s.errs[i]
	}
	if i >= len(s.tracks) {
		return s.tracks[len(s.tracks)-1], nil
	}
	return s.tracks[i], nil
}

type recordingPublisher struct {
	published []Track
}

func (p *recordingPublisher) Publish(track Track) error {
	p.published = append(p.published, track)
	return nil
}

func TestTrackerDeduplicatesConsecutive(t *testing.T) {
	source := &scriptedSource{tracks: []Track{
		{Artist: "Los Jaivas", Title: "Mira Niñita"},
		{Artist: "Los Jaivas", Title: "Mira Niñita"},
		{Artist: "Victor Jara", Title: "El Cigarrito"},
		{Artist: "Los Jaivas", Title: "Mira Niñita"},
	}}
	publisher := &recordingPublisher{}
	tracker := NewTracker(source, DefaultPollInterval, publisher)

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		tracker.poll(ctx)
	}

	history := tracker.History()
	if len(history) != 3 {
		t.Fatalf("expected 3 history entries after dedup, got %d", len(history))
	}
	if history[0].Title != "Mira Niñita" || history[1].Title != "El Cigarrito" {
		t.Errorf("history not newest first: %+v", history)
	}

	// The same song played again later is a new entry, only consecutive
	// repeats collapse.
	if len(publisher.published) != 3 {
		t.Errorf("expected 3 published track changes, got %d", len(publisher.published))
	}

	current, ok := tracker.Current()
	if !ok || current.Title != "Mira Niñita" {
		t.Errorf("Current = %+v, ok=%v", current, ok)
	}
}

func TestTrackerCapsHistory(t *testing.T) {
	tracks := make([]Track, HistoryLimit+5)
	for i := range tracks {
		tracks[i] = Track{Artist: "Artista", Title: fmt.Sprintf("Canción %d", i)}
	}
	tracker := NewTracker(&scriptedSource{tracks: tracks}, DefaultPollInterval, nil)

	ctx := context.Background()
	for range tracks {
		tracker.poll(ctx)
	}

	history := tracker.History()
	if len(history) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), HistoryLimit)
	}
	if history[0].Title != fmt.Sprintf("Canción %d", len(tracks)-1) {
		t.Errorf("newest track missing from history head: %+v", history[0])
	}
}

func TestTrackerPollFailureKeepsState(t *testing.T) {
	source := &scriptedSource{
		tracks: []Track{{Artist: "Los Prisioneros", Title: "Tren al Sur"}, {}},
		errs:   []error{nil, errors.New("metadata endpoint down")},
	}
	tracker := NewTracker(source, DefaultPollInterval, nil)

	ctx := context.Background()
	tracker.poll(ctx)
	tracker.poll(ctx)

	current, ok := tracker.Current()
	if !ok || current.Title != "Tren al Sur" {
		t.Fatalf("a failed poll must not clear the current track, got %+v ok=%v", current, ok)
	}
	if len(tracker.History()) != 1 {
		t.Fatalf("history should be unchanged after a failed poll")
	}
}

func TestParseTrackText(t *testing.T) {
	cases := []struct {
		in         string
		artist     string
		title      string
	}{
		{"Soda Stereo - De Música Ligera", "Soda Stereo", "De Música Ligera"},
		{"Café Tacvba - El Baile y el Salón - En Vivo", "Café Tacvba", "El Baile y el Salón - En Vivo"},
		{"Sin Separador", "Sin Separador", UnknownTitle},
		{" - Solo Título", UnknownArtist, "Solo Título"},
		{"", UnknownArtist, UnknownTitle},
	}

	for _, c := range cases {
		got := ParseTrackText(c.in)
		if got.Artist != c.artist || got.Title != c.title {
			t.Errorf("ParseTrackText(%q) = %q / %q; want %q / %q", c.in, got.Artist, got.Title, c.artist, c.title)
		}
	}
}
