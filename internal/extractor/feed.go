package extractor

import (
	"fmt"
	"strings"

	"pagesum/internal/domain"
)

// extractFeed takes the newest item of an RSS/Atom/JSON feed and returns its
// title and text content.
func (f *ArticleFetcher) extractFeed(body string) (string, error) {
	parsed, err := f.feedParser.ParseString(body)
	if err != nil {
		return "", fmt.Errorf("parse feed: %w", err)
	}

	if len(parsed.Items) == 0 {
		return "", domain.ErrEmptyArticle
	}

	item := parsed.Items[0]

	content := strings.TrimSpace(item.Content)
	if content == "" {
		content = strings.TrimSpace(item.Description)
	}

	// Feed bodies are frequently HTML fragments.
	if content != "" {
		if text, htmlErr := extractHTML(strings.NewReader(content)); htmlErr == nil {
			content = text
		}
	}

	title := strings.TrimSpace(item.Title)

	switch {
	case title != "" && content != "":
		return title + "\n\n" + content, nil
	case content != "":
		return content, nil
	case title != "":
		return title, nil
	default:
		return "", domain.ErrEmptyArticle
	}
}
