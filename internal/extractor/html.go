package extractor

import (
	"fmt"
	"io"
	"strings"

	"pagesum/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML pulls readable text out of an HTML document. Paragraphs inside
// <article> win; otherwise body paragraphs; otherwise the flattened body text.
func extractHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("create document from reader: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	root := doc.Find("article")
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var paragraphs []string
	root.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n\n"), nil
	}

	flat := strings.Join(strings.Fields(root.Text()), " ")
	if flat == "" {
		return "", domain.ErrEmptyArticle
	}

	return flat, nil
}
