// Package aggregator merges the per-league schedules into one chronologically
// sorted list. The sources are fetched concurrently and each one degrades to
// an empty list on failure, so one bad feed never blocks the others.
package aggregator

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"schedule-service/internal/domain"
	"schedule-service/internal/logging"
	"schedule-service/internal/metrics"
	"schedule-service/internal/providers"
	"schedule-service/internal/timeutil"
)

// Aggregator fans out to the configured sources and merges their results.
type Aggregator struct {
	sources []providers.ScheduleProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs an Aggregator over the given sources.
func New(sources []providers.ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	return &Aggregator{
		sources: sources,
		logger:  logger,
		metrics: recorder,
	}
}

// Schedule fetches every source concurrently, waits for all of them, and
// returns the combined schedule sorted ascending by start instant. The only
// error it can return is context cancellation; individual source failures are
// already contained at the fetcher boundary.
func (a *Aggregator) Schedule(ctx context.Context) ([]domain.Game, error) {
	start := time.Now()

	p := pool.NewWithResults[[]domain.Game]()
	for _, source := range a.sources {
		source := source
		p.Go(func() []domain.Game {
			return providers.SafeFetch(ctx, source, a.logger, a.metrics)
		})
	}
	lists := p.Wait()

	if err := ctx.Err(); err != nil {
		if a.metrics != nil {
			a.metrics.RecordAggregation(time.Since(start), 0, err)
		}
		return nil, err
	}

	total := 0
	for _, games := range lists {
		total += len(games)
	}
	merged := make([]domain.Game, 0, total)
	for _, games := range lists {
		merged = append(merged, games...)
	}

	sortByKickoff(merged)

	if a.metrics != nil {
		a.metrics.RecordAggregation(time.Since(start), len(merged), nil)
	}
	logging.Info(a.logger, "schedule aggregated",
		slog.Int(logging.FieldCount, len(merged)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return merged, nil
}

// sortByKickoff orders games by the instant reconstructed from their stored
// civil date/time pair. The sort is stable, so equal instants keep their
// per-source order.
func sortByKickoff(games []domain.Game) {
	type keyed struct {
		game domain.Game
		at   time.Time
	}
	entries := make([]keyed, len(games))
	for i, g := range games {
		// Unparseable pairs cannot occur here; they were dropped upstream.
		at, _ := timeutil.ParseCivil(g.Date, g.Time)
		entries[i] = keyed{game: g, at: at}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.Before(entries[j].at)
	})
	for i, entry := range entries {
		games[i] = entry.game
	}
}
