package reader

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const extractTimeout = 30 * time.Second

// ErrInvalidURL marks requests rejected before any network call.
var ErrInvalidURL = errors.New("invalid article url")

// Article is the readable rendition of an external news page, served to
// the in-site reader instead of embedding the third-party page directly.
type Article struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Content     string `json:"content"`
	TextContent string `json:"text_content"`
	Excerpt     string `json:"excerpt,omitempty"`
	Image       string `json:"image,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
}

// Extract fetches the page at articleURL and reduces it to readable content.
func Extract(articleURL string) (*Article, error) {
	if err := validateURL(articleURL); err != nil {
		return nil, err
	}

	extracted, err := readability.FromURL(articleURL, extractTimeout)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}

	return &Article{
		URL:         articleURL,
		Title:       extracted.Title,
		Byline:      extracted.Byline,
		Content:     extracted.Content,
		TextContent: extracted.TextContent,
		Excerpt:     extracted.Excerpt,
		Image:       extracted.Image,
		SiteName:    extracted.SiteName,
	}, nil
}

func validateURL(articleURL string) error {
	parsed, err := url.ParseRequestURI(articleURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: no host", ErrInvalidURL)
	}
	return nil
}
