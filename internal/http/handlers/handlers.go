package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	"schedule-service/internal/domain"
	"schedule-service/internal/logging"
)

type nowFunc func() time.Time

// ScheduleSource produces the merged, sorted schedule for one request.
type ScheduleSource interface {
	Schedule(ctx context.Context) ([]domain.Game, error)
}

// Handler wires HTTP routes to the aggregator.
type Handler struct {
	schedule ScheduleSource
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(schedule ScheduleSource, logger *slog.Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/api/schedule":
		h.Schedule(w, r)
	default:
		writeJSON(w, nethttp.StatusNotFound, map[string]string{"error": "not found"}, h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"}, h.logger)
		return
	}
	resp := map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Schedule aggregates the four feeds live and returns the merged schedule.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"}, h.logger)
		return
	}

	logger := logging.FromContext(r.Context(), h.logger)

	games, err := h.schedule.Schedule(r.Context())
	if err != nil {
		logging.Error(logger, "schedule aggregation failed", err)
		writeScheduleError(w, err, h.logger)
		return
	}

	logging.Info(logger, "served schedule", slog.Int(logging.FieldCount, len(games)))
	writeJSON(w, nethttp.StatusOK, domain.NewScheduleResponse(games), h.logger)
}
