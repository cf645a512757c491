package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"radiobeagle/demo/client"
	"radiobeagle/localnews"
	"radiobeagle/nowplaying"
)

// visibleArticles caps how many articles the listing renders at once
const visibleArticles = 10

// dateRanges is the cycling order for the 'f' key
var dateRanges = []string{
	localnews.RangeAll,
	localnews.RangeToday,
	localnews.RangeWeek,
	localnews.RangeMonth,
}

// Model represents the TUI state: a browsing view over the API
type Model struct {
	Client *client.Client

	// Filters
	Sources   []localnews.FeedSource
	SourceIdx int // 0 means all sources
	RangeIdx  int

	// Data synced from the API
	Articles   []localnews.Article
	Track      nowplaying.Track
	Playing    bool
	Refreshing bool
	Loading    bool
	Err        error
}

// NewModel creates a new TUI model
func NewModel(baseURL string) Model {
	return Model{
		Client:  client.NewClient(baseURL),
		Loading: true,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadSources(m.Client),
		loadNews(m.Client, m.selectedSource(), m.selectedRange()),
		pollNowPlaying(m.Client),
		tickCmd(),
	)
}

// selectedSource returns the active source filter, "Todos" for index 0
func (m Model) selectedSource() string {
	if m.SourceIdx == 0 || m.SourceIdx > len(m.Sources) {
		return localnews.SourceAll
	}
	return m.Sources[m.SourceIdx-1].Name
}

// selectedRange returns the active date bucket filter
func (m Model) selectedRange() string {
	return dateRanges[m.RangeIdx%len(dateRanges)]
}
