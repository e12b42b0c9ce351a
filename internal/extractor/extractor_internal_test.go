package extractor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pagesum/internal/domain"
)

const articleHTML = `<!DOCTYPE html>
<html><head><title>Example</title><style>p { color: red; }</style></head>
<body>
<nav><p>Navigation junk</p></nav>
<article>
<p>First paragraph.</p>
<p>Second paragraph.</p>
</article>
<footer><p>Footer junk</p></footer>
</body></html>`

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Example feed</title>
<item>
<title>First post</title>
<description><![CDATA[<p>Feed body text.</p>]]></description>
</item>
</channel></rss>`

func TestExtractHTMLPrefersArticleParagraphs(t *testing.T) {
	got, err := extractHTML(strings.NewReader(articleHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "First paragraph.\n\nSecond paragraph."
	if got != want {
		t.Fatalf("extracted text mismatch: got %q want %q", got, want)
	}
}

func TestExtractHTMLFallsBackToBodyText(t *testing.T) {
	html := `<html><body><div>Loose text without paragraphs.</div></body></html>`

	got, err := extractHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Loose text without paragraphs."
	if got != want {
		t.Fatalf("extracted text mismatch: got %q want %q", got, want)
	}
}

func TestExtractHTMLEmptyPage(t *testing.T) {
	html := `<html><head><script>let x = 1;</script></head><body></body></html>`

	if _, err := extractHTML(strings.NewReader(html)); !errors.Is(err, domain.ErrEmptyArticle) {
		t.Fatalf("expected ErrEmptyArticle, got %v", err)
	}
}

func TestExtractFetchesArticlePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	fetcher := NewArticleFetcher(slog.Default())

	got, err := fetcher.Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "First paragraph.") {
		t.Fatalf("extracted text mismatch: got %q", got)
	}
	if strings.Contains(got, "Navigation junk") {
		t.Fatalf("expected navigation to be stripped, got %q", got)
	}
}

func TestExtractFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer srv.Close()

	fetcher := NewArticleFetcher(slog.Default())

	got, err := fetcher.Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "First post\n\nFeed body text."
	if got != want {
		t.Fatalf("extracted text mismatch: got %q want %q", got, want)
	}
}

func TestExtractUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := NewArticleFetcher(slog.Default())

	if _, err := fetcher.Extract(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestExtractEmptyURL(t *testing.T) {
	fetcher := NewArticleFetcher(slog.Default())

	if _, err := fetcher.Extract(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}

func TestIsFeedContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/rss+xml", true},
		{"application/atom+xml; charset=utf-8", true},
		{"text/xml", true},
		{"application/feed+json", true},
		{"text/html; charset=utf-8", false},
		{"application/json", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isFeedContentType(tt.contentType); got != tt.want {
			t.Fatalf("isFeedContentType(%q) mismatch: got %v want %v", tt.contentType, got, tt.want)
		}
	}
}
