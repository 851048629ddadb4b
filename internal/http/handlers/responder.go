package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"schedule-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeScheduleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	body := domain.ErrorResponse{
		Success: false,
		Error:   "Failed to fetch schedule data",
		Message: err.Error(),
	}
	writeJSON(w, http.StatusInternalServerError, body, logger)
}
