package client

import (
	"context"
	"net/http"

	"radiobeagle/nowplaying"
)

type nowPlayingEnvelope struct {
	Success bool             `json:"success"`
	Playing bool             `json:"playing"`
	Track   nowplaying.Track `json:"track"`
}

// NowPlaying returns the current stream track, or ok=false when nothing
// is playing or the tracker is disabled server-side
func (c *Client) NowPlaying(ctx context.Context) (nowplaying.Track, bool, error) {
	var env nowPlayingEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/nowplaying", &env); err != nil {
		return nowplaying.Track{}, false, err
	}
	return env.Track, env.Playing, nil
}
