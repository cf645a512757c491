package localnews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// newRelayServer serves canned responses keyed by the decoded target URL,
// mimicking the forwarding proxy the production fetcher goes through.
func newRelayServer(t *testing.T, responses map[string]func(w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := r.URL.Query().Get("u")
		respond, ok := responses[target]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		respond(w)
	}))
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	responses := map[string]func(w http.ResponseWriter){
		"https://ok.example/feed": func(w http.ResponseWriter) {
			w.Write([]byte("<rss/>"))
		},
		"https://broken.example/feed": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	}
	server := newRelayServer(t, responses)
	defer server.Close()

	fetcher := NewFetcher(server.URL + "/?u=")
	sources := []FeedSource{
		{Name: "OK", URL: "https://ok.example/feed"},
		{Name: "Broken", URL: "https://broken.example/feed"},
		{Name: "Missing", URL: "https://missing.example/feed"},
	}

	payloads := fetcher.FetchAll(context.Background(), sources)
	if len(payloads) != len(sources) {
		t.Fatalf("expected a payload per source, got %d", len(payloads))
	}

	bodies := map[string]string{}
	for _, p := range payloads {
		bodies[p.Source.Name] = p.Body
	}

	if bodies["OK"] != "<rss/>" {
		t.Errorf("healthy feed body = %q, want %q", bodies["OK"], "<rss/>")
	}
	if bodies["Broken"] != "" {
		t.Errorf("feed with 500 status must yield an empty body, got %q", bodies["Broken"])
	}
	if bodies["Missing"] != "" {
		t.Errorf("missing feed must yield an empty body, got %q", bodies["Missing"])
	}
}

func TestFetchAllNetworkFailure(t *testing.T) {
	// Point at a closed server: every request errors at the transport level.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	fetcher := NewFetcher(server.URL + "/?u=")
	payloads := fetcher.FetchAll(context.Background(), []FeedSource{{Name: "Down", URL: "https://down.example/feed"}})

	if len(payloads) != 1 || payloads[0].Body != "" {
		t.Fatalf("network failure must degrade to an empty payload, got %+v", payloads)
	}
}

func TestRequestURLEncodesTarget(t *testing.T) {
	fetcher := NewFetcher("https://relay.example/?")
	got := fetcher.requestURL("https://feed.example/rss?a=1&b=2")
	want := "https://relay.example/?" + url.QueryEscape("https://feed.example/rss?a=1&b=2")
	if got != want {
		t.Fatalf("requestURL = %q, want %q", got, want)
	}

	direct := NewFetcher("")
	if got := direct.requestURL("https://feed.example/rss"); got != "https://feed.example/rss" {
		t.Fatalf("empty relay must pass the URL through, got %q", got)
	}
}
