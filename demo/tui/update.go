package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case NewsLoadedMsg:
		return m.handleNewsLoaded(msg)
	case RefreshDoneMsg:
		return m.handleRefreshDone(msg)
	case SourcesLoadedMsg:
		if msg.Err == nil {
			m.Sources = msg.Sources
		}
		return m, nil
	case NowPlayingMsg:
		// A failed poll clears the line rather than erroring the whole view
		m.Playing = msg.Err == nil && msg.Playing
		m.Track = msg.Track
		return m, nil
	case TickMsg:
		return m, tea.Batch(pollNowPlaying(m.Client), tickCmd())
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "R":
		if !m.Refreshing {
			m.Refreshing = true
			m.Err = nil
			return m, refreshNews(m.Client)
		}
	case "s", "S":
		m.SourceIdx = (m.SourceIdx + 1) % (len(m.Sources) + 1)
		m.Loading = true
		return m, loadNews(m.Client, m.selectedSource(), m.selectedRange())
	case "f", "F":
		m.RangeIdx = (m.RangeIdx + 1) % len(dateRanges)
		m.Loading = true
		return m, loadNews(m.Client, m.selectedSource(), m.selectedRange())
	}
	return m, nil
}

// handleNewsLoaded processes a filtered listing response
func (m Model) handleNewsLoaded(msg NewsLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.Err = nil
	m.Articles = msg.Articles
	return m, nil
}

// handleRefreshDone processes the end of a server-side aggregation cycle
func (m Model) handleRefreshDone(msg RefreshDoneMsg) (tea.Model, tea.Cmd) {
	m.Refreshing = false
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.Err = nil
	// Re-apply the active filters against the fresh snapshot
	m.Loading = true
	return m, loadNews(m.Client, m.selectedSource(), m.selectedRange())
}
