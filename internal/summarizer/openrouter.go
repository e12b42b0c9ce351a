package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pagesum/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// promptSeparator keeps the instruction apart from the content because the
// default model ignores the system role.
const promptSeparator = "\n\n---\n\n"

// OpenRouterSummarizer calls an OpenRouter chat-completion endpoint to
// produce summaries.
type OpenRouterSummarizer struct {
	client openai.Client
	model  string
}

// NewOpenRouterSummarizer builds a new summarizer instance. siteURL and
// appName are sent as the attribution headers OpenRouter recommends.
func NewOpenRouterSummarizer(
	apiKey string,
	siteURL string,
	appName string,
	model string,
) (*OpenRouterSummarizer, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("model is empty")
	}

	return &OpenRouterSummarizer{
		client: openai.NewClient(
			option.WithBaseURL(openRouterBaseURL),
			option.WithAPIKey(apiKey),
			option.WithHeader("HTTP-Referer", siteURL),
			option.WithHeader("X-Title", appName),
		),
		model: model,
	}, nil
}

// Summarize sends a single chat-completion request and returns the model's
// text content. A provider-side 429 is reported as domain.ErrRateLimited.
func (s *OpenRouterSummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return "", errors.New("input is empty")
	}

	systemPrompt := strings.TrimSpace(input.SystemPrompt)
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(systemPrompt, text)),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("do request: %w", domain.ErrRateLimited)
		}

		return "", fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return NoContentPlaceholder, nil
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return NoContentPlaceholder, nil
	}

	return content, nil
}

func buildPrompt(systemPrompt string, text string) string {
	return systemPrompt + promptSeparator + text
}
