package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	pageClientTimeout = 20 * time.Second
	maxPageBytes      = 10 << 20
)

// Fetcher derives readable article text from a web page URL.
type Fetcher interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// ArticleFetcher downloads a page and extracts its article text. HTML pages
// go through goquery; RSS/Atom/JSON feeds through gofeed.
type ArticleFetcher struct {
	client     *http.Client
	feedParser *gofeed.Parser
	log        *slog.Logger
}

func NewArticleFetcher(log *slog.Logger) *ArticleFetcher {
	return &ArticleFetcher{
		client:     &http.Client{Timeout: pageClientTimeout},
		feedParser: gofeed.NewParser(),
		log:        log,
	}
}

func (f *ArticleFetcher) Extract(
	ctx context.Context,
	pageURL string,
) (string, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return "", errors.New("page URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			f.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"pageURL", pageURL,
				"operation", "Extract")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if isFeedContentType(resp.Header.Get("Content-Type")) {
		return f.extractFeed(string(body))
	}

	return extractHTML(strings.NewReader(string(body)))
}

func isFeedContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)

	for _, marker := range []string{"rss", "atom", "feed+json", "text/xml", "application/xml"} {
		if strings.Contains(contentType, marker) {
			return true
		}
	}

	return false
}
