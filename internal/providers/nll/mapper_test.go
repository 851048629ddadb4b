package nll

import (
	"encoding/json"
	"testing"

	"schedule-service/internal/domain"
)

func decodePayload(t *testing.T, raw string) schedulePayload {
	t.Helper()
	var payload schedulePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload
}

func TestNormalizeKeepsOnlyRoughnecksGames(t *testing.T) {
	payload := decodePayload(t, `{"phases": [{"weeks": [{"matches": [
		{
			"id": 1,
			"date": {"utcMatchStart": "2025-12-07T02:00:00Z"},
			"squads": {
				"home": {"id": 524, "code": "CGY", "displayName": "Calgary Roughnecks"},
				"away": {"id": 510, "code": "SAS", "displayName": "Saskatchewan Rush"}
			}
		},
		{
			"id": 2,
			"date": {"utcMatchStart": "2025-12-08T02:00:00Z"},
			"squads": {
				"home": {"id": 512, "code": "BUF"},
				"away": {"id": 513, "code": "TOR"}
			}
		},
		{
			"id": 3,
			"date": {"utcMatchStart": "2025-12-14T02:00:00Z"},
			"squads": {
				"home": {"id": 510, "code": "SAS"},
				"away": {"id": 999, "code": "CGY"}
			}
		}
	]}]}]}`)

	games := Normalize(payload, domain.LeagueNLL)
	if len(games) != 2 {
		t.Fatalf("expected 2 Calgary games, got %d", len(games))
	}
	// Match 1 keeps Calgary at home by squad ID, match 3 away by tricode.
	if games[0].GameID != "1" || games[1].GameID != "3" {
		t.Fatalf("kept games = %s, %s", games[0].GameID, games[1].GameID)
	}
	if games[0].HomeTricode != "CGY" || games[1].AwayTricode != "CGY" {
		t.Fatal("orientation not preserved")
	}
	if games[0].HomeLogo != "https://d9xhqsanh0o19.cloudfront.net/logos/CGY.png" {
		t.Fatalf("homeLogo = %s", games[0].HomeLogo)
	}
	if games[0].LinkToSummary != "https://nll.com/game/1" {
		t.Fatalf("summary link = %s", games[0].LinkToSummary)
	}
}

func TestNormalizeCompletedMatch(t *testing.T) {
	payload := decodePayload(t, `{"phases": [{"weeks": [{"matches": [{
		"id": 10,
		"date": {"utcMatchStart": "2025-12-07T02:00:00Z"},
		"status": {"code": "COMP", "name": "Complete", "period": 4},
		"venue": {"name": "WestJet Field at Scotiabank Saddledome"},
		"squads": {
			"home": {"id": 524, "code": "CGY", "score": {"goals": 12}},
			"away": {"id": 510, "code": "SAS", "score": {"score": 0}}
		}
	}]}]}]}`)

	games := Normalize(payload, domain.LeagueNLL)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}

	game := games[0]
	if game.HomeScore == nil || *game.HomeScore != 12 {
		t.Fatalf("homeScore = %v", game.HomeScore)
	}
	// A zero on the score field is a real score, not an absence.
	if game.AwayScore == nil || *game.AwayScore != 0 {
		t.Fatalf("awayScore = %v", game.AwayScore)
	}
	if game.Overtime {
		t.Fatal("four periods is regulation")
	}
	// 2025-12-07T02:00:00Z is the previous evening in MST.
	if game.Date != "2025-12-06" || game.Time != "19:00" {
		t.Fatalf("kickoff = %s %s", game.Date, game.Time)
	}
	if game.Location != "WestJet Field at Scotiabank Saddledome" {
		t.Fatalf("location = %q", game.Location)
	}
}

func TestNormalizeOvertimePastFourPeriods(t *testing.T) {
	payload := decodePayload(t, `{"phases": [{"weeks": [{"matches": [{
		"id": 11,
		"date": {"utcMatchStart": "2025-12-07T02:00:00Z"},
		"status": {"code": "COMP", "period": 5},
		"squads": {
			"home": {"id": 524, "code": "CGY", "score": {"goals": 13}},
			"away": {"id": 510, "code": "SAS", "score": {"goals": 12}}
		}
	}]}]}]}`)

	games := Normalize(payload, domain.LeagueNLL)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if !games[0].Overtime {
		t.Fatal("expected overtime past the fourth period")
	}
	if games[0].Shootout {
		t.Fatal("lacrosse has no shootouts")
	}
}

func TestNormalizeScoresRequireCompletion(t *testing.T) {
	payload := decodePayload(t, `{"phases": [{"weeks": [{"matches": [{
		"id": 12,
		"date": {"utcMatchStart": "2025-12-07T02:00:00Z"},
		"status": {"code": "SCHED", "name": "Scheduled", "period": 2},
		"squads": {
			"home": {"id": 524, "code": "CGY", "score": {"goals": 3}},
			"away": {"id": 510, "code": "SAS", "score": {"goals": 2}}
		}
	}]}]}]}`)

	games := Normalize(payload, domain.LeagueNLL)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].HomeScore != nil || games[0].AwayScore != nil {
		t.Fatal("expected no scores before completion")
	}
}

func TestNormalizeSquadNameFallbacks(t *testing.T) {
	payload := decodePayload(t, `{"phases": [{"weeks": [{"matches": [{
		"id": 13,
		"date": {"startDate": "2025-12-07", "startTime": "02:00:00"},
		"squads": {
			"home": {"id": 524, "name": "Calgary", "nickname": "Roughnecks"},
			"away": {"id": 510}
		}
	}]}]}]}`)

	games := Normalize(payload, domain.LeagueNLL)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].HomeTeam != "Calgary Roughnecks" {
		t.Fatalf("homeTeam = %q", games[0].HomeTeam)
	}
	if games[0].AwayTeam != "TBD" {
		t.Fatalf("awayTeam = %q", games[0].AwayTeam)
	}
	if games[0].Location != "TBD" {
		t.Fatalf("location = %q", games[0].Location)
	}
}

func TestNormalizeDropsUndateableMatches(t *testing.T) {
	payload := decodePayload(t, `{"phases": [{"weeks": [{"matches": [{
		"id": 14,
		"squads": {"home": {"id": 524, "code": "CGY"}, "away": {"id": 510, "code": "SAS"}}
	}]}]}]}`)

	if games := Normalize(payload, domain.LeagueNLL); len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
}

func TestNormalizeEmptyPayload(t *testing.T) {
	games := Normalize(schedulePayload{}, domain.LeagueNLL)
	if games == nil || len(games) != 0 {
		t.Fatalf("expected empty slice, got %v", games)
	}
}
