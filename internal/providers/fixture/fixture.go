package fixture

import (
	"context"
	"time"

	"schedule-service/internal/domain"
	"schedule-service/internal/timeutil"
)

// Provider returns a static pair of games useful for local testing and
// bootstrapping without hitting the upstream feeds.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// League reports the fixture's league tag.
func (p *Provider) League() domain.League {
	return domain.LeagueNHL
}

// FetchSchedule returns a deterministic set of example games placed shortly
// after the current instant.
func (p *Provider) FetchSchedule(ctx context.Context) ([]domain.Game, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)

	first, err := timeutil.MountainCivil(start.Add(2 * time.Hour))
	if err != nil {
		return nil, err
	}
	second, err := timeutil.MountainCivil(start.Add(26 * time.Hour))
	if err != nil {
		return nil, err
	}

	games := []domain.Game{
		{
			GameID:      "fixture-1",
			Date:        first.Date,
			Time:        first.Time,
			Location:    "Scotiabank Saddledome",
			HomeTeam:    "Calgary Flames",
			AwayTeam:    "Edmonton Oilers",
			HomeTeamID:  "20",
			AwayTeamID:  "22",
			HomeTricode: "CGY",
			AwayTricode: "EDM",
			League:      domain.LeagueNHL,
		},
		{
			GameID:      "fixture-2",
			Date:        second.Date,
			Time:        second.Time,
			Location:    "Rogers Place",
			HomeTeam:    "Edmonton Oilers",
			AwayTeam:    "Calgary Flames",
			HomeTeamID:  "22",
			AwayTeamID:  "20",
			HomeTricode: "EDM",
			AwayTricode: "CGY",
			League:      domain.LeagueNHL,
		},
	}

	return games, nil
}
