package hockeytech

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
		w.Write([]byte(`{"SiteKit": {"Schedule": [
			{"game_id": "1", "date_played": "2025-11-01", "schedule_time": "19:00:00"},
			{"game_id": "2", "date_played": "2025-11-08", "schedule_time": "02:00:00"}
		]}}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		League:     domain.LeagueWHL,
		FeedURL:    server.URL,
		HTTPClient: server.Client(),
	})

	games, err := client.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if client.League() != domain.LeagueWHL {
		t.Fatalf("league = %s", client.League())
	}
}

func TestFetchScheduleUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{
		League:     domain.LeagueAHL,
		FeedURL:    server.URL,
		HTTPClient: server.Client(),
	})

	_, err := client.FetchSchedule(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var fetchErr *providers.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetchErr.League != domain.LeagueAHL || fetchErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("fetch error = %+v", fetchErr)
	}
}

func TestFetchScheduleDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(Config{
		League:     domain.LeagueWHL,
		FeedURL:    server.URL,
		HTTPClient: server.Client(),
	})

	if _, err := client.FetchSchedule(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchScheduleHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Config{
		League:     domain.LeagueWHL,
		FeedURL:    server.URL,
		HTTPClient: server.Client(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.FetchSchedule(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
