package providers

import (
	"context"
	"log/slog"
	"time"

	"schedule-service/internal/domain"
	"schedule-service/internal/logging"
	"schedule-service/internal/metrics"
)

// SafeFetch calls one source and contains any failure at the fetcher
// boundary: the error is logged and counted, and the source contributes an
// empty list so the rest of the schedule still aggregates.
func SafeFetch(ctx context.Context, provider ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) []domain.Game {
	league := provider.League()
	start := time.Now()

	games, err := provider.FetchSchedule(ctx)
	if recorder != nil {
		recorder.RecordSourceFetch(string(league), time.Since(start), err)
	}
	if err != nil {
		logging.Error(logger, "source fetch failed", err,
			slog.String(logging.FieldLeague, string(league)),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return []domain.Game{}
	}

	logging.Info(logger, "source fetch complete",
		slog.String(logging.FieldLeague, string(league)),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	if games == nil {
		games = []domain.Game{}
	}
	return games
}
