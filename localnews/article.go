package localnews

import "time"

// Article is one normalized feed item ready for display.
type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     string    `json:"pubDate"`
	RawDate     time.Time `json:"rawDate"`
	Image       string    `json:"image,omitempty"`
	Source      string    `json:"source"`
}
