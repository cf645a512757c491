package tui

import (
	"time"

	"radiobeagle/localnews"
	"radiobeagle/nowplaying"
)

// Messages for the tea program

// NewsLoadedMsg is sent when an article listing arrives
type NewsLoadedMsg struct {
	Articles []localnews.Article
	Err      error
}

// RefreshDoneMsg is sent when a server-side aggregation cycle finishes
type RefreshDoneMsg struct {
	Articles []localnews.Article
	Err      error
}

// SourcesLoadedMsg carries the configured feed list
type SourcesLoadedMsg struct {
	Sources []localnews.FeedSource
	Err     error
}

// NowPlayingMsg carries the current stream track
type NowPlayingMsg struct {
	Track   nowplaying.Track
	Playing bool
	Err     error
}

// TickMsg is sent periodically to refresh the now-playing line
type TickMsg struct {
	Time time.Time
}
