package domain

import (
	"errors"
	"time"
)

var (
	// ErrAPIKeyMissing means the server has no OpenRouter API key configured.
	ErrAPIKeyMissing = errors.New("API key is not configured")

	// ErrNoInput means the request carried neither a usable URL nor text.
	ErrNoInput = errors.New("no text or URL to summarize")

	// ErrBadURL means the url field is not an absolute http(s) URL.
	ErrBadURL = errors.New("URL is not valid")

	// ErrEmptyArticle means the page was fetched but yielded no readable text.
	ErrEmptyArticle = errors.New("extracted article text is empty")

	// ErrRateLimited means the summarization provider rejected the call with 429.
	ErrRateLimited = errors.New("provider rate limit exceeded")
)

type Summary struct {
	ID        int64     `json:"id"`
	SourceURL string    `json:"source_url,omitempty"`
	Prompt    string    `json:"prompt"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
