package scheduler

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"pagesum/internal/database"
)

func TestPurgeOldSummaries(t *testing.T) {
	ctx := context.Background()

	db, err := database.New(ctx, filepath.Join(t.TempDir(), "test.sqlite"), slog.Default())
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("failed to close database: %v", closeErr)
		}
	})

	if err = db.SaveSummary(ctx, "", "prompt", "summary"); err != nil {
		t.Fatalf("failed to save summary: %v", err)
	}

	// Negative retention pushes the cutoff into the future so every row
	// counts as expired.
	s := New(ctx, db, -time.Hour, slog.Default())
	s.purgeOldSummaries()

	summaries, err := db.RecentSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("failed to fetch recent summaries: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected summaries to be purged, got %d", len(summaries))
	}
}

func TestSchedulerStartStop(t *testing.T) {
	ctx := context.Background()

	db, err := database.New(ctx, filepath.Join(t.TempDir(), "test.sqlite"), slog.Default())
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("failed to close database: %v", closeErr)
		}
	})

	s := New(ctx, db, 30*24*time.Hour, slog.Default())
	if err = s.Start(); err != nil {
		t.Fatalf("failed to start scheduler: %v", err)
	}
	s.Stop()
}
