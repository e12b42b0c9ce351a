package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"pagesum/internal/config"
	"pagesum/internal/domain"
	"pagesum/internal/extractor"
	"pagesum/internal/summarizer"

	"github.com/labstack/echo/v4"
)

const mockResponseDelay = time.Second

// HistoryStore persists successful summarizations.
type HistoryStore interface {
	SaveSummary(ctx context.Context, sourceURL string, prompt string, summary string) error
	RecentSummaries(ctx context.Context, limit int64) ([]domain.Summary, error)
}

type SummarizeResponse struct {
	Message       string `json:"message"`
	ProcessedText string `json:"processed_text"`
}

// Server holds the request pipeline dependencies: article extraction,
// summarization and the history store.
type Server struct {
	cfg        config.Config
	fetcher    extractor.Fetcher
	summarizer summarizer.Summarizer
	history    HistoryStore
	mockDelay  time.Duration
	log        *slog.Logger
}

func New(
	cfg config.Config,
	fetcher extractor.Fetcher,
	s summarizer.Summarizer,
	history HistoryStore,
	log *slog.Logger,
) *Server {
	return &Server{
		cfg:        cfg,
		fetcher:    fetcher,
		summarizer: s,
		history:    history,
		mockDelay:  mockResponseDelay,
		log:        log,
	}
}

func (s *Server) Configure(e *echo.Echo) {
	e.File("/", filepath.Join(s.cfg.StaticDir, "index.html"))
	e.Static("/static", s.cfg.StaticDir)

	e.GET("/healthz", s.Health)
	e.GET("/history", s.History)
	e.POST("/send_api", s.SendAPI)
}

// SendAPI is the summarization pipeline: validate → (conditionally) extract →
// summarize → map the outcome to a status code.
func (s *Server) SendAPI(c echo.Context) error {
	ctx := c.Request().Context()

	if strings.TrimSpace(s.cfg.OpenRouterAPIKey) == "" {
		s.log.ErrorContext(ctx, "OpenRouter API key is not configured",
			"error", domain.ErrAPIKeyMissing)

		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgNoAPIKey})
	}

	req := &SummarizeRequest{}
	if err := c.Bind(req); err != nil {
		s.log.ErrorContext(ctx, "Failed to bind request",
			"error", err)

		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgBadRequest})
	}

	var receivedText string
	var sourceURL string

	kind, value := resolveInput(req)
	switch kind {
	case inputMock:
		s.log.InfoContext(ctx, "Returning a mock response for debugging")
		time.Sleep(s.mockDelay)

		return c.JSON(http.StatusOK, SummarizeResponse{
			Message:       msgMock,
			ProcessedText: msgMockProcessed,
		})

	case inputURL:
		pageURL, ok := normalizeURL(value)
		if !ok {
			s.log.ErrorContext(ctx, "Request URL is not a valid http(s) URL",
				"error", domain.ErrBadURL,
				"pageURL", value)

			return c.JSON(http.StatusBadRequest, echo.Map{"error": msgBadURL})
		}

		s.log.InfoContext(ctx, "Received URL for summarization",
			"pageURL", pageURL)

		text, err := s.fetcher.Extract(ctx, pageURL)
		if errors.Is(err, domain.ErrEmptyArticle) {
			s.log.WarnContext(ctx, "Could not extract text from URL",
				"error", err,
				"pageURL", pageURL)

			return c.JSON(http.StatusBadRequest, echo.Map{"error": msgEmptyArticle})
		}
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to process URL",
				"error", err,
				"pageURL", pageURL)

			return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgExtractFailed})
		}
		if strings.TrimSpace(text) == "" {
			s.log.WarnContext(ctx, "Could not extract text from URL",
				"error", domain.ErrEmptyArticle,
				"pageURL", pageURL)

			return c.JSON(http.StatusBadRequest, echo.Map{"error": msgEmptyArticle})
		}

		receivedText = text
		sourceURL = pageURL

	case inputText:
		receivedText = value

	default:
		s.log.ErrorContext(ctx, "Request is missing text and URL",
			"error", domain.ErrNoInput)

		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgMissingInput})
	}

	systemPrompt := strings.TrimSpace(req.Context)
	if systemPrompt == "" {
		systemPrompt = summarizer.DefaultSystemPrompt
	}

	result, err := s.summarizer.Summarize(ctx, summarizer.Input{
		Text:         receivedText,
		SystemPrompt: systemPrompt,
	})
	if errors.Is(err, domain.ErrRateLimited) {
		s.log.WarnContext(ctx, "Provider rate limit exceeded",
			"error", err)

		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": msgRateLimited})
	}
	if err != nil {
		s.log.ErrorContext(ctx, "Summarization call failed",
			"error", err)

		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgProviderFailed})
	}

	if s.history != nil {
		// History is best effort and never fails the request.
		if err = s.history.SaveSummary(ctx, sourceURL, systemPrompt, result); err != nil {
			s.log.WarnContext(ctx, "Failed to save summary to history",
				"error", err,
				"sourceURL", sourceURL)
		}
	}

	return c.JSON(http.StatusOK, SummarizeResponse{
		Message:       msgDataProcessed,
		ProcessedText: result,
	})
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
