package nll

import "encoding/json"

// The Champion Data feed groups matches three levels deep; the normalizer
// flattens phases -> weeks -> matches before mapping.

type schedulePayload struct {
	Phases []phase `json:"phases"`
}

type phase struct {
	Weeks []week `json:"weeks"`
}

type week struct {
	Matches []match `json:"matches"`
}

type match struct {
	ID     json.Number  `json:"id"`
	Date   *matchDate   `json:"date"`
	Status *matchStatus `json:"status"`
	Venue  *matchVenue  `json:"venue"`
	Squads *matchSquads `json:"squads"`
}

type matchDate struct {
	UTCMatchStart string `json:"utcMatchStart"`
	StartDate     string `json:"startDate"`
	StartTime     string `json:"startTime"`
}

type matchStatus struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Period int    `json:"period"`
}

type matchVenue struct {
	Name     string `json:"name"`
	TimeZone string `json:"timeZone"`
}

type matchSquads struct {
	Home *squad `json:"home"`
	Away *squad `json:"away"`
}

type squad struct {
	ID          json.Number `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Nickname    string      `json:"nickname"`
	DisplayName string      `json:"displayName"`
	Score       *squadScore `json:"score"`
}

type squadScore struct {
	Goals *int `json:"goals"`
	Score *int `json:"score"`
}
