package reader

import "testing"

func TestExtractRejectsBadURLs(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"relative", "/nota/123"},
		{"placeholder link", "#"},
		{"bad scheme", "ftp://example.com/nota"},
		{"no host", "https:///nota"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Extract(c.url); err == nil {
				t.Fatalf("Extract(%q) should fail before any network call", c.url)
			}
		})
	}
}
