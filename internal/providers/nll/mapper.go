package nll

import (
	"fmt"
	"strings"
	"time"

	"schedule-service/internal/domain"
	"schedule-service/internal/timeutil"
)

// Normalize flattens the phases -> weeks -> matches grouping, keeps only
// matches where the Roughnecks appear on either side, and maps the remainder
// into unified game records.
func Normalize(payload schedulePayload, league domain.League) []domain.Game {
	matches := flatten(payload)
	if len(matches) == 0 {
		return []domain.Game{}
	}

	out := make([]domain.Game, 0, len(matches))
	for _, m := range matches {
		if !involvesCalgary(m) {
			continue
		}
		if rec, ok := normalizeMatch(m, league); ok {
			out = append(out, rec)
		}
	}
	return out
}

func flatten(payload schedulePayload) []match {
	var matches []match
	for _, p := range payload.Phases {
		for _, w := range p.Weeks {
			matches = append(matches, w.Matches...)
		}
	}
	return matches
}

// involvesCalgary matches either side by squad ID or tricode; the feed is a
// full-league schedule, so everything else is discarded.
func involvesCalgary(m match) bool {
	if m.Squads == nil {
		return false
	}
	return isCalgary(m.Squads.Home) || isCalgary(m.Squads.Away)
}

func isCalgary(s *squad) bool {
	if s == nil {
		return false
	}
	return s.ID.String() == calgaryTeamID || s.Code == calgaryTricode
}

func normalizeMatch(m match, league domain.League) (domain.Game, bool) {
	if m.Squads == nil || m.Squads.Home == nil || m.Squads.Away == nil {
		return domain.Game{}, false
	}
	home := m.Squads.Home
	away := m.Squads.Away

	kickoff, ok := resolveKickoff(m.Date)
	if !ok {
		return domain.Game{}, false
	}
	civil, err := timeutil.MountainCivil(kickoff)
	if err != nil {
		return domain.Game{}, false
	}

	matchID := m.ID.String()
	if matchID == "0" {
		matchID = ""
	}

	rec := domain.Game{
		GameID:        matchID,
		Date:          civil.Date,
		Time:          civil.Time,
		Location:      venueName(m.Venue),
		HomeTeam:      squadName(home),
		AwayTeam:      squadName(away),
		HomeTeamID:    squadIdentifier(home),
		AwayTeamID:    squadIdentifier(away),
		HomeTricode:   home.Code,
		AwayTricode:   away.Code,
		HomeLogo:      squadLogo(home.Code),
		AwayLogo:      squadLogo(away.Code),
		League:        league,
		LinkToSummary: summaryLink(matchID),
	}

	if isCompleted(m.Status) {
		rec.HomeScore = squadScoreValue(home.Score)
		rec.AwayScore = squadScoreValue(away.Score)
		// The NLL plays four quarters; anything past that is overtime.
		rec.Overtime = m.Status != nil && m.Status.Period > 4
	}

	return rec, true
}

func resolveKickoff(d *matchDate) (time.Time, bool) {
	if d == nil {
		return time.Time{}, false
	}
	if d.UTCMatchStart != "" {
		if t, err := timeutil.ParseTimestamp(d.UTCMatchStart); err == nil {
			return t, true
		}
	}
	if d.StartDate != "" && d.StartTime != "" {
		if t, err := timeutil.ParseTimestamp(d.StartDate + "T" + d.StartTime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isCompleted(status *matchStatus) bool {
	if status == nil {
		return false
	}
	return status.Code == "COMP" || status.Name == "Complete" || status.Name == "Final"
}

func squadScoreValue(score *squadScore) *int {
	if score == nil {
		return nil
	}
	if score.Goals != nil {
		return score.Goals
	}
	return score.Score
}

func squadName(s *squad) string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	if name := strings.TrimSpace(s.Name + " " + s.Nickname); name != "" {
		return name
	}
	return "TBD"
}

func squadIdentifier(s *squad) string {
	id := s.ID.String()
	if id == "" || id == "0" {
		return ""
	}
	return id
}

func squadLogo(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf(logoURLTemplate, code)
}

func venueName(v *matchVenue) string {
	if v == nil || v.Name == "" {
		return "TBD"
	}
	return v.Name
}

func summaryLink(matchID string) string {
	if matchID == "" {
		return ""
	}
	return fmt.Sprintf(summaryURLTemplate, matchID)
}
