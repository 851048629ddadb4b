package hockeytech

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"schedule-service/internal/domain"
	"schedule-service/internal/providers"
	"schedule-service/internal/providers/rawmap"
	"schedule-service/internal/timeutil"
)

// completedStatuses is the status vocabulary that marks a HockeyTech game final.
var completedStatuses = map[string]bool{
	"Final":     true,
	"Final/OT":  true,
	"Final/SO":  true,
	"Completed": true,
	"F":         true,
}

// Normalize maps one HockeyTech feed payload into unified game records.
// Entries that are not objects or whose start instant cannot be resolved are
// dropped, never emitted partially.
func Normalize(payload any, league domain.League) []domain.Game {
	entries, root := unwrap(payload)
	if len(entries) == 0 {
		return []domain.Game{}
	}

	out := make([]domain.Game, 0, len(entries))
	for _, entry := range entries {
		game, ok := rawmap.AsObject(entry)
		if !ok {
			continue
		}
		if rec, ok := normalizeGame(game, root, league); ok {
			out = append(out, rec)
		}
	}
	return out
}

// unwrap handles the feed's wrapper variants: SiteKit.Schedule, a top-level
// Schedule key, or a bare list. Single games may arrive as an object instead
// of a one-element list.
func unwrap(payload any) ([]any, rawmap.Object) {
	if root, ok := rawmap.AsObject(payload); ok {
		if siteKit, ok := root.Object("SiteKit"); ok {
			if list, ok := siteKit.List("Schedule"); ok {
				return list, root
			}
		}
		if list, ok := root.List("Schedule"); ok {
			return list, root
		}
		return nil, root
	}
	if list, ok := payload.([]any); ok {
		return list, nil
	}
	return nil, nil
}

func normalizeGame(game, root rawmap.Object, league domain.League) (domain.Game, bool) {
	kickoff, fixed, ok := resolveKickoff(game)
	if !ok {
		return domain.Game{}, false
	}
	if !fixed {
		kickoff = overlayKickoffTime(game, kickoff)
	}
	civil, err := timeutil.MountainCivil(kickoff)
	if err != nil {
		return domain.Game{}, false
	}

	homeID := teamID(game, []string{"home_team", "homeTeam"}, []string{"home_team_id", "homeTeamId"}, "home_team")
	awayID := teamID(game, []string{"visiting_team", "visitingTeam"}, []string{"visiting_team_id", "visitingTeamId"}, "visiting_team")

	gameID := gameIdentifier(game)
	status := gameStatus(game)

	rec := domain.Game{
		GameID:        gameID,
		Date:          civil.Date,
		Time:          civil.Time,
		Location:      venueName(game, root),
		HomeTeam:      teamName(game, "home_team_name", "home_team", "homeTeamName"),
		AwayTeam:      teamName(game, "visiting_team_name", "visiting_team", "visitingTeamName", "away_team_name", "awayTeamName"),
		HomeTeamID:    homeID,
		AwayTeamID:    awayID,
		HomeTricode:   teamCode(game, "home_team_code", "home_team"),
		AwayTricode:   teamCode(game, "visiting_team_code", "visiting_team"),
		HomeLogo:      teamLogo(league, homeID),
		AwayLogo:      teamLogo(league, awayID),
		League:        league,
		TicketLink:    ticketLink(game),
		LinkToSummary: summaryLink(league, gameID),
	}

	if isCompleted(game, status) {
		rec.HomeScore = scoreField(game, "home_goal_count", "home_team_score", "home_score", "homeScore")
		rec.AwayScore = scoreField(game, "visiting_goal_count", "visiting_team_score", "visiting_score", "away_score", "awayScore")
		rec.Overtime = status == "Final/OT" || status == "Final/SO" ||
			periodBeyondRegulation(game) || flagSet(game, "overtime")
		rec.Shootout = status == "Final/SO" || flagSet(game, "shootout")
	}

	return rec, true
}

// kickoffRule resolves one candidate source for the start instant, in the
// feed's priority order. fixed marks sources that carry a full timestamp,
// which blocks the separate time-of-day overlay.
type kickoffRule struct {
	name    string
	resolve func(rawmap.Object) (time.Time, bool)
	fixed   bool
}

var kickoffRules = []kickoffRule{
	{name: "GameDateISO8601", resolve: timestampField("GameDateISO8601"), fixed: true},
	{name: "date_time_played", resolve: timestampField("date_time_played"), fixed: true},
	{name: "date_played", resolve: datePlayedWithScheduleTime},
	{name: "game_date", resolve: timestampField("game_date")},
	{name: "date", resolve: timestampField("date")},
	{name: "start_time", resolve: timestampField("start_time")},
	{name: "datetime", resolve: timestampField("datetime")},
}

func resolveKickoff(game rawmap.Object) (time.Time, bool, bool) {
	for _, rule := range kickoffRules {
		if t, ok := rule.resolve(game); ok {
			return t, rule.fixed, true
		}
	}
	return time.Time{}, false, false
}

func timestampField(key string) func(rawmap.Object) (time.Time, bool) {
	return func(game rawmap.Object) (time.Time, bool) {
		raw, ok := game.String(key)
		if !ok {
			return time.Time{}, false
		}
		t, err := timeutil.ParseTimestamp(raw)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}

// datePlayedWithScheduleTime combines the bare date_played field with the
// separately-shipped schedule_time clock when present.
func datePlayedWithScheduleTime(game rawmap.Object) (time.Time, bool) {
	raw, ok := game.String("date_played")
	if !ok {
		return time.Time{}, false
	}
	t, err := timeutil.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, false
	}
	if clock, ok := game.Value("schedule_time"); ok {
		if h, m, s, ok := parseClock(clock); ok {
			t = time.Date(t.Year(), t.Month(), t.Day(), h, m, s, 0, t.Location())
		}
	}
	return t, true
}

// overlayKickoffTime applies a separately-shipped time-of-day field on top of
// a date-only kickoff.
func overlayKickoffTime(game rawmap.Object, t time.Time) time.Time {
	raw, ok := game.FirstValue("game_time", "time", "start_time_local")
	if !ok {
		return t
	}
	h, m, _, ok := parseClock(raw)
	if !ok {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), h, m, 0, 0, t.Location())
}

// parseClock reads a clock value that is either colon-delimited (HH:MM or
// HH:MM:SS) or packed digits (HHMM). Unparseable components default to zero.
func parseClock(value any) (hour, minute, second int, ok bool) {
	raw, ok := providers.LooseID(value)
	if !ok {
		return 0, 0, 0, false
	}
	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		hour, _ = strconv.Atoi(parts[0])
		if len(parts) > 1 {
			minute, _ = strconv.Atoi(parts[1])
		}
		if len(parts) > 2 {
			second, _ = strconv.Atoi(parts[2])
		}
		return hour, minute, second, true
	}
	if len(raw) > 2 {
		hour, _ = strconv.Atoi(raw[:2])
		minute, _ = strconv.Atoi(raw[2:])
		return hour, minute, 0, true
	}
	hour, _ = strconv.Atoi(raw)
	return hour, 0, 0, true
}

// teamID resolves a team identifier: nested team-object id first, then flat
// id fields, then the team field itself when it is numeric-like.
func teamID(game rawmap.Object, nestedKeys, flatKeys []string, selfKey string) string {
	for _, key := range nestedKeys {
		if team, ok := game.Object(key); ok {
			if raw, ok := team.Value("id"); ok {
				if id, ok := providers.LooseID(raw); ok {
					return id
				}
			}
		}
	}
	for _, key := range flatKeys {
		if raw, ok := game.Value(key); ok {
			if id, ok := providers.LooseID(raw); ok {
				return id
			}
		}
	}
	if raw, ok := game.Value(selfKey); ok && providers.IsNumeric(raw) {
		if id, ok := providers.LooseID(raw); ok {
			return id
		}
	}
	return ""
}

func teamName(game rawmap.Object, flatKey, nestedKey string, fallbacks ...string) string {
	if name, ok := game.String(flatKey); ok {
		return name
	}
	if team, ok := game.Object(nestedKey); ok {
		if name, ok := team.FirstString("name", "nickname", "full_name"); ok {
			return name
		}
	}
	if name, ok := game.FirstString(fallbacks...); ok {
		return name
	}
	return "TBD"
}

func teamCode(game rawmap.Object, flatKey, nestedKey string) string {
	if code, ok := game.String(flatKey); ok {
		return code
	}
	if team, ok := game.Object(nestedKey); ok {
		if code, ok := team.FirstString("code", "abbrev", "abbreviation"); ok {
			return code
		}
	}
	return ""
}

func teamLogo(league domain.League, teamID string) string {
	if teamID == "" {
		return ""
	}
	return fmt.Sprintf(logoURLTemplate, strings.ToLower(string(league)), teamID)
}

// venueName resolves the venue, dereferencing numeric venue IDs through the
// payload's venue directory and trimming trailing city suffixes.
func venueName(game, root rawmap.Object) string {
	raw, ok := game.FirstValue("venue_name", "venueName", "venue", "arena", "arena_name", "arenaName")
	if !ok {
		return "TBD"
	}
	location, ok := providers.LooseID(raw)
	if !ok {
		return "TBD"
	}
	if providers.IsNumeric(raw) {
		location = lookupVenue(game, root, location)
	}
	// "Scotiabank Saddledome - Calgary, AB" keeps only the venue itself.
	if idx := strings.Index(location, " - "); idx >= 0 {
		location = location[:idx]
	}
	return location
}

func lookupVenue(game, root rawmap.Object, id string) string {
	if info, ok := game.Object("venue_info"); ok {
		if name, ok := info.String("name"); ok {
			return name
		}
	}
	siteKit, ok := root.Object("SiteKit")
	if !ok {
		return id
	}
	venues, ok := siteKit.List("Venue")
	if !ok {
		return id
	}
	for _, entry := range venues {
		venue, ok := rawmap.AsObject(entry)
		if !ok {
			continue
		}
		if !venueMatches(venue, id) {
			continue
		}
		if name, ok := venue.FirstString("name", "venue_name"); ok {
			return name
		}
	}
	// Still a bare ID; keep it rather than degrading to TBD.
	return id
}

func venueMatches(venue rawmap.Object, id string) bool {
	for _, key := range []string{"id", "venue_id"} {
		if raw, ok := venue.Value(key); ok {
			if candidate, ok := providers.LooseID(raw); ok && candidate == id {
				return true
			}
		}
	}
	return false
}

func gameStatus(game rawmap.Object) string {
	if status, ok := game.FirstString("game_status", "status", "state"); ok {
		return status
	}
	return "Scheduled"
}

func isCompleted(game rawmap.Object, status string) bool {
	if completedStatuses[status] {
		return true
	}
	if raw, ok := game.Value("final"); ok {
		return providers.Truthy(raw)
	}
	return false
}

// scoreField walks the per-league score field variants; the first present
// field wins even when its value fails to parse.
func scoreField(game rawmap.Object, keys ...string) *int {
	raw, ok := game.FirstValue(keys...)
	if !ok {
		return nil
	}
	if n, ok := providers.LooseInt(raw); ok {
		return &n
	}
	return nil
}

func periodBeyondRegulation(game rawmap.Object) bool {
	raw, ok := game.Value("period")
	if !ok {
		return false
	}
	n, ok := providers.LooseInt(raw)
	return ok && n > 3
}

func flagSet(game rawmap.Object, key string) bool {
	raw, ok := game.Value(key)
	return ok && providers.Truthy(raw)
}

func gameIdentifier(game rawmap.Object) string {
	raw, ok := game.FirstValue("game_id", "id")
	if !ok {
		return ""
	}
	id, _ := providers.LooseID(raw)
	return id
}

func summaryLink(league domain.League, gameID string) string {
	if gameID == "" {
		return ""
	}
	switch league {
	case domain.LeagueWHL:
		return fmt.Sprintf(whlSummaryTemplate, gameID)
	case domain.LeagueAHL:
		return fmt.Sprintf(ahlSummaryTemplate, gameID)
	default:
		return ""
	}
}

func ticketLink(game rawmap.Object) string {
	link, _ := game.FirstString("tickets_url", "ticket_link", "tickets", "ticket_url")
	return link
}
