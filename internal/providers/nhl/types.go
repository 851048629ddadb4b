package nhl

import "encoding/json"

// The api-web feed nests display strings under localized objects and serves
// either a flat game list or a week-grouped structure.

type scheduleResponse struct {
	Games gameList `json:"games"`
}

type gameWeekResponse struct {
	GameWeek []struct {
		Games []rawGame `json:"games"`
	} `json:"gameWeek"`
}

// gameList accepts both the flat list and the gameWeek grouping, flattening
// the latter.
type gameList []rawGame

func (l *gameList) UnmarshalJSON(data []byte) error {
	var flat []rawGame
	if err := json.Unmarshal(data, &flat); err == nil {
		*l = flat
		return nil
	}

	var grouped gameWeekResponse
	if err := json.Unmarshal(data, &grouped); err == nil {
		for _, week := range grouped.GameWeek {
			*l = append(*l, week.Games...)
		}
		return nil
	}

	// Unrecognized shape contributes no games rather than failing the feed.
	*l = nil
	return nil
}

type rawGame struct {
	ID                json.Number       `json:"id"`
	StartTimeUTC      string            `json:"startTimeUTC"`
	GameDate          string            `json:"gameDate"`
	StartTime         string            `json:"startTime"`
	GameState         string            `json:"gameState"`
	GameScheduleState string            `json:"gameScheduleState"`
	Venue             *localized        `json:"venue"`
	VenueName         string            `json:"venueName"`
	TicketsLink       string            `json:"ticketsLink"`
	HomeTeam          *rawTeam          `json:"homeTeam"`
	AwayTeam          *rawTeam          `json:"awayTeam"`
	PeriodDescriptor  *periodDescriptor `json:"periodDescriptor"`
}

type rawTeam struct {
	ID        json.Number `json:"id"`
	Name      *localized  `json:"name"`
	PlaceName *localized  `json:"placeName"`
	Abbrev    string      `json:"abbrev"`
	TriCode   string      `json:"triCode"`
	Logo      string      `json:"logo"`
	Score     *int        `json:"score"`
}

type localized struct {
	Default string `json:"default"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}
