package providers

import (
	"context"

	"schedule-service/internal/domain"
)

// ScheduleProvider defines how one upstream feed is fetched and normalized
// into unified game records. Implementations return the full schedule the
// feed exposes; filtering to the tracked club is a per-source concern.
type ScheduleProvider interface {
	League() domain.League
	FetchSchedule(ctx context.Context) ([]domain.Game, error)
}
