package aggregator

import (
	"context"
	"errors"
	"testing"

	"schedule-service/internal/domain"
	"schedule-service/internal/metrics"
	"schedule-service/internal/providers"
	"schedule-service/internal/timeutil"
)

type stubSource struct {
	league domain.League
	games  []domain.Game
	err    error
}

func (s *stubSource) League() domain.League {
	return s.league
}

func (s *stubSource) FetchSchedule(ctx context.Context) ([]domain.Game, error) {
	return s.games, s.err
}

func game(league domain.League, id, date, clock string) domain.Game {
	return domain.Game{GameID: id, League: league, Date: date, Time: clock}
}

func TestScheduleMergesAndSorts(t *testing.T) {
	agg := New([]providers.ScheduleProvider{
		&stubSource{league: domain.LeagueNHL, games: []domain.Game{
			game(domain.LeagueNHL, "nhl-2", "2025-12-01", "19:00"),
			game(domain.LeagueNHL, "nhl-1", "2025-11-01", "19:00"),
		}},
		&stubSource{league: domain.LeagueWHL, games: []domain.Game{
			game(domain.LeagueWHL, "whl-1", "2025-11-15", "18:00"),
		}},
		&stubSource{league: domain.LeagueNLL, games: []domain.Game{
			game(domain.LeagueNLL, "nll-1", "2025-11-01", "12:00"),
		}},
	}, nil, metrics.NewRecorder())

	games, err := agg.Schedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}

	for i := 1; i < len(games); i++ {
		prev, _ := timeutil.ParseCivil(games[i-1].Date, games[i-1].Time)
		curr, _ := timeutil.ParseCivil(games[i].Date, games[i].Time)
		if curr.Before(prev) {
			t.Fatalf("games out of order at %d: %s before %s", i, games[i].GameID, games[i-1].GameID)
		}
	}
	if games[0].GameID != "nll-1" || games[3].GameID != "nhl-2" {
		t.Fatalf("order = %s ... %s", games[0].GameID, games[3].GameID)
	}
}

func TestScheduleSurvivesFailedSource(t *testing.T) {
	recorder := metrics.NewRecorder()
	agg := New([]providers.ScheduleProvider{
		&stubSource{league: domain.LeagueNHL, games: []domain.Game{
			game(domain.LeagueNHL, "nhl-1", "2025-11-01", "19:00"),
		}},
		&stubSource{league: domain.LeagueAHL, err: errors.New("feed down")},
	}, nil, recorder)

	games, err := agg.Schedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0].GameID != "nhl-1" {
		t.Fatalf("games = %+v", games)
	}
	if recorder.SourceErrors(string(domain.LeagueAHL)) != 1 {
		t.Fatal("expected the failure to be counted")
	}
}

func TestScheduleAllSourcesFailed(t *testing.T) {
	agg := New([]providers.ScheduleProvider{
		&stubSource{league: domain.LeagueNHL, err: errors.New("down")},
		&stubSource{league: domain.LeagueWHL, err: errors.New("down")},
	}, nil, nil)

	games, err := agg.Schedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if games == nil || len(games) != 0 {
		t.Fatalf("expected empty schedule, got %v", games)
	}
}

func TestScheduleEqualInstantsKeepSourceOrder(t *testing.T) {
	agg := New([]providers.ScheduleProvider{
		&stubSource{league: domain.LeagueNHL, games: []domain.Game{
			game(domain.LeagueNHL, "first", "2025-11-01", "19:00"),
			game(domain.LeagueNHL, "second", "2025-11-01", "19:00"),
			game(domain.LeagueNHL, "third", "2025-11-01", "19:00"),
		}},
	}, nil, nil)

	games, err := agg.Schedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	if games[0].GameID != "first" || games[1].GameID != "second" || games[2].GameID != "third" {
		t.Fatalf("order = %s, %s, %s", games[0].GameID, games[1].GameID, games[2].GameID)
	}
}

func TestScheduleCancelledContext(t *testing.T) {
	agg := New([]providers.ScheduleProvider{
		&stubSource{league: domain.LeagueNHL},
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := agg.Schedule(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
