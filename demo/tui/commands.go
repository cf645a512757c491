package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"radiobeagle/demo/client"
)

// loadNews creates a command that fetches the filtered article listing
func loadNews(c *client.Client, source, dateRange string) tea.Cmd {
	return func() tea.Msg {
		articles, err := c.LocalNews(context.Background(), source, dateRange, "")
		return NewsLoadedMsg{Articles: articles, Err: err}
	}
}

// refreshNews creates a command that triggers a full aggregation cycle
func refreshNews(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		articles, err := c.RefreshLocalNews(context.Background())
		return RefreshDoneMsg{Articles: articles, Err: err}
	}
}

// loadSources creates a command that fetches the configured feed list
func loadSources(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		sources, err := c.Sources(context.Background())
		return SourcesLoadedMsg{Sources: sources, Err: err}
	}
}

// pollNowPlaying creates a command that fetches the current stream track
func pollNowPlaying(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		track, playing, err := c.NowPlaying(context.Background())
		return NowPlayingMsg{Track: track, Playing: playing, Err: err}
	}
}

// tickCmd creates a command that ticks every 10s to re-poll the stream
func tickCmd() tea.Cmd {
	return tea.Tick(10*time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
