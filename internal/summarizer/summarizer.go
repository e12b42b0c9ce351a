package summarizer

import (
	"context"
)

// DefaultSystemPrompt is used when the request carries no context override.
const DefaultSystemPrompt = "あなたは役立つアシスタントです。"

// NoContentPlaceholder is returned when the provider answers without content.
const NoContentPlaceholder = "AIから有効な応答がありませんでした。"

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the original plain text to summarise.
	Text string
	// SystemPrompt steers the model; empty means DefaultSystemPrompt.
	SystemPrompt string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
