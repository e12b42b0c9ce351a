package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pagesum/internal/config"
	"pagesum/internal/database"
	"pagesum/internal/extractor"
	"pagesum/internal/scheduler"
	"pagesum/internal/server"
	"pagesum/internal/summarizer"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	bodyLimit       = "1M"
	gzipLevel       = 5
	shutdownTimeout = 10 * time.Second
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.InfoContext(ctx, ".env file is not found so the environment is used as is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	if strings.TrimSpace(cfg.OpenRouterAPIKey) == "" {
		log.WarnContext(ctx, "OPENROUTER_API_KEY is missing so summarization requests will fail",
			"envVar", "OPENROUTER_API_KEY")
	}

	db, err := database.New(ctx, cfg.DBPath, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize db",
			"error", err,
			"dbPath", cfg.DBPath)

		return
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", cfg.DBPath)
		}
	}()
	log.InfoContext(ctx, "DB is initialized",
		"dbPath", cfg.DBPath)

	sum, err := summarizer.NewOpenRouterSummarizer(
		cfg.OpenRouterAPIKey,
		cfg.SiteURL,
		cfg.AppName,
		cfg.Model,
	)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenRouter summarizer",
			"error", err,
			"model", cfg.Model)

		return
	}
	log.InfoContext(ctx, "OpenRouter summarizer is initialized",
		"model", cfg.Model)

	fetcher := extractor.NewArticleFetcher(log)
	srv := server.New(cfg, fetcher, sum, db, log)

	retention := time.Duration(cfg.HistoryRetentionDays) * 24 * time.Hour
	sched := scheduler.New(ctx, db, retention, log)

	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", scheduler.DailyPurgeSpec)

		return
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", scheduler.DailyPurgeSpec,
		"retentionDays", cfg.HistoryRetentionDays)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.Decompress())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: gzipLevel}))
	e.Use(middleware.RequestID())
	srv.Configure(e)

	go func() {
		if startErr := e.Start(cfg.Address); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Server stopped unexpectedly",
				"error", startErr,
				"address", cfg.Address)
		}
	}()
	log.InfoContext(ctx, "Server is started",
		"address", cfg.Address)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	log.InfoContext(ctx, "Shutdown signal is received",
		"signal", sig.String())
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Failed to shut down server",
			"error", err)
	}

	log.InfoContext(ctx, "Exiting...",
		"signal", sig.String(),
		"uptimeSeconds", time.Since(start).Seconds())
}
