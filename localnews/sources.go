package localnews

import "time"

// FeedSource identifies one regional RSS feed.
type FeedSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultSources are the regional outlets shown on the local news page.
// The list is fixed for the lifetime of the process.
var DefaultSources = []FeedSource{
	{Name: "La Prensa Austral", URL: "https://laprensaaustral.cl/feed/"},
	{Name: "El Pingüino", URL: "https://www.elpinguino.com/feed/"},
	{Name: "El Magallanico", URL: "https://www.elmagallanico.com/feed/"},
}

// Default configuration values
const (
	// DefaultRelay is the forwarding proxy prefix the target feed URL is
	// appended to, percent-encoded. The regional feed servers do not send
	// permissive CORS headers, so browser clients went through this relay;
	// the server keeps the same route so both see identical payloads.
	DefaultRelay = "https://corsproxy.io/?"

	// FetchTimeout bounds each per-feed request. The relay and the feed
	// servers are third parties with no availability guarantees.
	FetchTimeout = 10 * time.Second
)
