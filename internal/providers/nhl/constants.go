package nhl

import "time"

const (
	// Club-schedule feed for the Flames; season is part of the path.
	defaultScheduleURL = "https://api-web.nhle.com/v1/club-schedule-season/CGY/20252026"

	defaultHTTPTimeout = 10 * time.Second

	summaryURLTemplate = "https://nhl.com/gamecenter/%s"
)
