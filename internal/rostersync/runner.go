// Package rostersync builds the local player dataset by walking the
// player-profile provider's paginated list endpoint.
//
// The provider caps free keys at 5 requests per minute, so the run
// spaces requests, checkpoints after every page, and resumes from the
// checkpoint when interrupted.
package rostersync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/courtcast/internal/adapters/rosterapi"
	"github.com/okian/courtcast/internal/domain/roster"
	"github.com/okian/courtcast/pkg/logger"
	"github.com/okian/courtcast/pkg/metrics"
)

// pageLister is what the runner needs from the roster client.
type pageLister interface {
	ListPage(ctx context.Context, cursor *int) (rosterapi.Page, error)
}

// Run executes a full roster sync and writes the dataset to
// cfg.OutputPath. It honors ctx for cancellation between requests; an
// interrupted run resumes from its checkpoint on the next invocation.
func Run(ctx context.Context, cfg *Config) error {
	client := rosterapi.NewClient(cfg.APIKey,
		rosterapi.WithBaseURL(cfg.BaseURL),
		rosterapi.WithPerPage(cfg.PerPage),
	)
	return run(ctx, cfg, client)
}

func run(ctx context.Context, cfg *Config, client pageLister) error {
	cfg = cfg.withDefaults()
	log := logger.Get().Named("rostersync")

	if cfg.Fresh {
		discardCheckpoint(cfg.OutputPath)
	}

	cursor, byID := loadCheckpoint(ctx, cfg.OutputPath)

	var (
		lastCall    time.Time
		emptyStreak int
		retries     int
		pages       int
	)

	for {
		if err := throttle(ctx, lastCall, cfg.MinRequestGap); err != nil {
			return err
		}
		lastCall = time.Now()

		page, err := client.ListPage(ctx, cursor)
		if err != nil {
			if !errors.Is(err, rosterapi.ErrRateLimited) && !errors.Is(err, rosterapi.ErrList) {
				return err
			}
			retries++
			metrics.RecordRosterSyncRetry()
			if retries > cfg.MaxRetries {
				return fmt.Errorf("giving up after %d retries: %w", cfg.MaxRetries, err)
			}
			backoff := backoffFor(cfg.RetryBackoffBase, retries)
			log.Warn(ctx, "page fetch failed; backing off",
				logger.Error(err),
				logger.Int("attempt", retries),
				logger.Duration("backoff", backoff),
			)
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			continue
		}
		retries = 0
		pages++

		for _, p := range page.Players {
			byID[p.ID] = p
		}
		if len(page.Players) == 0 {
			emptyStreak++
		} else {
			emptyStreak = 0
		}

		if err := savePartial(byID, page.NextCursor, cfg.OutputPath); err != nil {
			return err
		}
		metrics.UpdateRosterPlayersTotal(len(byID))

		log.Info(ctx, "page fetched",
			logger.Int("page", pages),
			logger.Int("added", len(page.Players)),
			logger.Int("total", len(byID)),
		)

		if emptyStreak >= cfg.MaxEmptyStreak {
			log.Warn(ctx, "too many consecutive empty pages; assuming end of dataset",
				logger.Int("empty_streak", emptyStreak))
			break
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	if err := finalize(byID, cfg.OutputPath); err != nil {
		return err
	}

	log.Info(ctx, "roster sync complete",
		logger.Int("players", len(byID)),
		logger.Int("pages", pages),
		logger.String("output", cfg.OutputPath),
	)
	return nil
}

// throttle waits until at least gap has passed since lastCall.
func throttle(ctx context.Context, lastCall time.Time, gap time.Duration) error {
	if lastCall.IsZero() {
		return nil
	}
	wait := gap - time.Since(lastCall)
	if wait <= 0 {
		return nil
	}
	return sleep(ctx, wait)
}

// backoffFor returns the exponential backoff for a retry attempt.
func backoffFor(base time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > defaultMaxBackoff {
		return defaultMaxBackoff
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("sync interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// Loaded reports how many players an existing dataset holds, zero when
// it is missing or unreadable. Used by the CLI to print a summary.
func Loaded(path string) int {
	pool, err := roster.LoadFile(path)
	if err != nil {
		return 0
	}
	return pool.Len()
}
