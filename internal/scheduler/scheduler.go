package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pagesum/internal/database"

	"github.com/robfig/cron/v3"
)

const (
	DailyPurgeSpec = "0 3 * * *"

	purgeTimeout = time.Minute
)

// Scheduler prunes old summary history rows on a daily cron.
type Scheduler struct {
	ctx       context.Context
	cron      *cron.Cron
	db        *database.Database
	retention time.Duration
	log       *slog.Logger
}

func New(
	ctx context.Context,
	db *database.Database,
	retention time.Duration,
	log *slog.Logger,
) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	return &Scheduler{
		ctx:       ctx,
		cron:      c,
		db:        db,
		retention: retention,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(DailyPurgeSpec, s.purgeOldSummaries); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) purgeOldSummaries() {
	ctx, cancel := context.WithTimeout(s.ctx, purgeTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.retention)

	purged, err := s.db.PurgeSummariesBefore(ctx, cutoff)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to purge old summaries",
			"error", err,
			"cutoff", cutoff)

		return
	}

	s.log.InfoContext(ctx, "Old summaries are purged",
		"cutoff", cutoff,
		"purgedCount", purged)
}
