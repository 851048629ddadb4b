package nhl

import (
	"encoding/json"
	"fmt"
	"time"

	"schedule-service/internal/domain"
	"schedule-service/internal/timeutil"
)

// completedStates is the gameState vocabulary that marks an NHL game final.
var completedStates = map[string]bool{
	"OFF":      true,
	"FINAL":    true,
	"OFFICIAL": true,
}

// Normalize maps a raw club-schedule payload into unified game records. The
// payload may be a {games: [...]} object, a {games: {gameWeek: [...]}}
// grouping, or a bare game list; anything else yields an empty list.
func Normalize(data []byte, league domain.League) []domain.Game {
	games := decodeGames(data)
	if len(games) == 0 {
		return []domain.Game{}
	}

	out := make([]domain.Game, 0, len(games))
	for _, game := range games {
		if rec, ok := normalizeGame(game, league); ok {
			out = append(out, rec)
		}
	}
	return out
}

func decodeGames(data []byte) []rawGame {
	var payload scheduleResponse
	if err := json.Unmarshal(data, &payload); err == nil && len(payload.Games) > 0 {
		return payload.Games
	}

	var bare []rawGame
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare
	}
	return nil
}

func normalizeGame(game rawGame, league domain.League) (domain.Game, bool) {
	// The raw home/away designation is kept as reported; games missing
	// either side are dropped.
	if game.HomeTeam == nil || game.AwayTeam == nil {
		return domain.Game{}, false
	}

	kickoff, ok := resolveKickoff(game)
	if !ok {
		return domain.Game{}, false
	}
	civil, err := timeutil.MountainCivil(kickoff)
	if err != nil {
		return domain.Game{}, false
	}

	gameID := game.ID.String()
	if gameID == "0" {
		gameID = ""
	}

	rec := domain.Game{
		GameID:        gameID,
		Date:          civil.Date,
		Time:          civil.Time,
		Location:      venueName(game),
		HomeTeam:      teamName(game.HomeTeam),
		AwayTeam:      teamName(game.AwayTeam),
		HomeTeamID:    teamIdentifier(game.HomeTeam),
		AwayTeamID:    teamIdentifier(game.AwayTeam),
		HomeTricode:   tricode(game.HomeTeam),
		AwayTricode:   tricode(game.AwayTeam),
		HomeLogo:      game.HomeTeam.Logo,
		AwayLogo:      game.AwayTeam.Logo,
		League:        league,
		TicketLink:    game.TicketsLink,
		LinkToSummary: summaryLink(gameID),
	}

	if isCompleted(game) {
		rec.HomeScore = game.HomeTeam.Score
		rec.AwayScore = game.AwayTeam.Score
		rec.Overtime, rec.Shootout = extraPeriods(game.PeriodDescriptor)
	}

	return rec, true
}

func resolveKickoff(game rawGame) (time.Time, bool) {
	for _, candidate := range []string{game.StartTimeUTC, game.GameDate, game.StartTime} {
		if candidate == "" {
			continue
		}
		if t, err := timeutil.ParseTimestamp(candidate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isCompleted(game rawGame) bool {
	state := game.GameState
	if state == "" {
		state = game.GameScheduleState
	}
	return completedStates[state]
}

// extraPeriods derives overtime/shootout from the structured period
// descriptor: SHOOTOUT type means shootout; OVERTIME type or a period past
// regulation that is not a shootout means overtime.
func extraPeriods(pd *periodDescriptor) (overtime, shootout bool) {
	if pd == nil {
		return false, false
	}
	shootout = pd.PeriodType == "SHOOTOUT"
	overtime = pd.PeriodType == "OVERTIME" || (pd.Number > 3 && !shootout)
	return overtime, shootout
}

func teamName(team *rawTeam) string {
	if team.Name != nil && team.Name.Default != "" {
		return team.Name.Default
	}
	if team.PlaceName != nil && team.PlaceName.Default != "" {
		return team.PlaceName.Default
	}
	return "TBD"
}

func teamIdentifier(team *rawTeam) string {
	id := team.ID.String()
	if id == "" || id == "0" {
		return ""
	}
	return id
}

func tricode(team *rawTeam) string {
	if team.Abbrev != "" {
		return team.Abbrev
	}
	return team.TriCode
}

func venueName(game rawGame) string {
	if game.Venue != nil && game.Venue.Default != "" {
		return game.Venue.Default
	}
	if game.VenueName != "" {
		return game.VenueName
	}
	return "TBD"
}

func summaryLink(gameID string) string {
	if gameID == "" {
		return ""
	}
	return fmt.Sprintf(summaryURLTemplate, gameID)
}
