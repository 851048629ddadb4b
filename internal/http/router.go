package http

import (
	nethttp "net/http"

	"schedule-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/api/schedule", handler.Schedule)
	return mux
}
