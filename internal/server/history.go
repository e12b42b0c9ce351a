package server

import (
	"net/http"
	"strconv"
	"strings"

	"pagesum/internal/domain"

	"github.com/labstack/echo/v4"
)

const (
	defaultHistoryLimit int64 = 20
	maxHistoryLimit     int64 = 100
)

// History returns the most recent stored summaries, newest first.
func (s *Server) History(c echo.Context) error {
	ctx := c.Request().Context()

	limit := defaultHistoryLimit
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msgBadRequest})
		}

		limit = min(parsed, maxHistoryLimit)
	}

	summaries, err := s.history.RecentSummaries(ctx, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch summary history",
			"error", err,
			"limit", limit)

		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgHistoryFailed})
	}

	if summaries == nil {
		summaries = []domain.Summary{}
	}

	return c.JSON(http.StatusOK, echo.Map{"summaries": summaries})
}
