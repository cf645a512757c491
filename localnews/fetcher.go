package localnews

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
)

// StatusError reports a non-success HTTP status from the relay or a feed server.
type StatusError struct {
	Source string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Source, e.Code)
}

// FeedPayload carries one feed's raw response body. A failed fetch yields
// an empty body so the caller can skip parsing without special-casing.
type FeedPayload struct {
	Source FeedSource
	Body   string
}

// Fetcher retrieves raw feed documents through the configured relay.
type Fetcher struct {
	client *http.Client
	relay  string
}

// NewFetcher creates a fetcher. An empty relay disables proxying and the
// feed URLs are requested directly.
func NewFetcher(relay string) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: FetchTimeout},
		relay:  relay,
	}
}

// FetchAll requests every source concurrently and waits for all of them.
// One slow or broken feed never fails the batch: its payload comes back
// with an empty body and the error is only logged.
func (f *Fetcher) FetchAll(ctx context.Context, sources []FeedSource) []FeedPayload {
	var wg sync.WaitGroup
	results := make(chan FeedPayload, len(sources))

	for _, source := range sources {
		wg.Add(1)
		go func(src FeedSource) {
			defer wg.Done()
			body, err := f.fetch(ctx, src)
			if err != nil {
				log.Printf("localnews: fetch %s failed: %v", src.Name, err)
				results <- FeedPayload{Source: src}
				return
			}
			results <- FeedPayload{Source: src, Body: body}
		}(source)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	payloads := make([]FeedPayload, 0, len(sources))
	for payload := range results {
		payloads = append(payloads, payload)
	}
	return payloads
}

func (f *Fetcher) fetch(ctx context.Context, src FeedSource) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.requestURL(src.URL), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Source: src.Name, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (f *Fetcher) requestURL(feedURL string) string {
	if f.relay == "" {
		return feedURL
	}
	return f.relay + url.QueryEscape(feedURL)
}
