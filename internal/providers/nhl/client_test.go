package nhl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedule-service/internal/domain"
	"schedule-service/internal/providers"
)

func TestFetchScheduleNormalizesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"games": [{
			"id": 2025020101,
			"startTimeUTC": "2025-11-01T01:00:00Z",
			"homeTeam": {"id": 20, "abbrev": "CGY"},
			"awayTeam": {"id": 22, "abbrev": "EDM"}
		}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{ScheduleURL: server.URL, HTTPClient: server.Client()})

	games, err := client.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if client.League() != domain.LeagueNHL {
		t.Fatalf("league = %s", client.League())
	}
}

func TestFetchScheduleUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{ScheduleURL: server.URL, HTTPClient: server.Client()})

	_, err := client.FetchSchedule(context.Background())
	var fetchErr *providers.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d", fetchErr.StatusCode)
	}
}
