package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pagesum/internal/domain"
)

const defaultRecentLimit = 20

func (d *Database) SaveSummary(
	ctx context.Context,
	sourceURL string,
	prompt string,
	summary string,
) error {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return errors.New("summary is empty")
	}

	query := "insert into summaries (source_url, prompt, summary) values (?, ?, ?)"

	_, err := d.db.ExecContext(ctx, query, strings.TrimSpace(sourceURL), prompt, summary)

	return err
}

func (d *Database) RecentSummaries(
	ctx context.Context,
	limit int64,
) ([]domain.Summary, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	query := "select id, source_url, prompt, summary, created_at " +
		"from summaries order by created_at desc, id desc limit ?"

	rows, err := d.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() {
		if err = rows.Close(); err != nil {
			d.log.ErrorContext(ctx, "Failed to close rows",
				"error", err,
				"limit", limit,
				"operation", "RecentSummaries")
		}
	}()

	var summaries []domain.Summary
	for rows.Next() {
		var s domain.Summary
		if err = rows.Scan(&s.ID, &s.SourceURL, &s.Prompt, &s.Summary, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return summaries, nil
}

func (d *Database) PurgeSummariesBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	query := "delete from summaries where created_at < ?"

	result, err := d.db.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
