package domain

// League tags a game with the upstream feed it came from.
type League string

const (
	LeagueNHL League = "NHL"
	LeagueWHL League = "WHL"
	LeagueAHL League = "AHL"
	LeagueNLL League = "NLL"
)

// Game is the unified schedule record every source maps into.
// Date and Time are civil strings in Mountain Time; a game whose start
// instant cannot be resolved is dropped by the normalizer, never emitted
// partially. Scores are set only once the provider reports the game final.
type Game struct {
	GameID        string `json:"gameId,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
	HomeTeamID    string `json:"homeTeamId,omitempty"`
	AwayTeamID    string `json:"awayTeamId,omitempty"`
	HomeTricode   string `json:"homeTricode,omitempty"`
	AwayTricode   string `json:"awayTricode,omitempty"`
	HomeLogo      string `json:"homeLogo,omitempty"`
	AwayLogo      string `json:"awayLogo,omitempty"`
	League        League `json:"league"`
	TicketLink    string `json:"ticketLink,omitempty"`
	HomeScore     *int   `json:"homeScore,omitempty"`
	AwayScore     *int   `json:"awayScore,omitempty"`
	LinkToSummary string `json:"linkToSummary,omitempty"`
	Overtime      bool   `json:"overtime"`
	Shootout      bool   `json:"shootout"`
}

// ScheduleResponse is the payload returned by GET /api/schedule.
type ScheduleResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    []Game `json:"data"`
}

// PublishedSchedule is the blob written to object storage by the uploader job.
type PublishedSchedule struct {
	Success     bool   `json:"success"`
	Count       int    `json:"count"`
	LastUpdated string `json:"lastUpdated"`
	Data        []Game `json:"data"`
}

// ErrorResponse is the failure payload for the schedule endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewScheduleResponse builds a success payload, never with a nil Data slice.
func NewScheduleResponse(games []Game) ScheduleResponse {
	if games == nil {
		games = []Game{}
	}
	return ScheduleResponse{
		Success: true,
		Count:   len(games),
		Data:    games,
	}
}

// NewPublishedSchedule builds the uploader payload, never with a nil Data slice.
func NewPublishedSchedule(games []Game, lastUpdated string) PublishedSchedule {
	if games == nil {
		games = []Game{}
	}
	return PublishedSchedule{
		Success:     true,
		Count:       len(games),
		LastUpdated: lastUpdated,
		Data:        games,
	}
}
