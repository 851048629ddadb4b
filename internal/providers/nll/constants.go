package nll

import "time"

const (
	defaultTokenURL = "https://championdata.au.auth0.com/oauth/token"
	defaultAudience = "https://api.nll.championdata.io/"
	defaultBaseURL  = "https://api.nll.championdata.io"

	defaultLeagueID = 1
	defaultLevelID  = 1
	defaultSeasonID = 225

	defaultHTTPTimeout = 10 * time.Second

	// Tokens are refreshed once fewer than 5 minutes of validity remain.
	tokenExpiryLeeway = 5 * time.Minute

	// Roughnecks identifiers used to filter the full-league feed.
	calgaryTeamID  = "524"
	calgaryTricode = "CGY"

	logoURLTemplate    = "https://d9xhqsanh0o19.cloudfront.net/logos/%s.png"
	summaryURLTemplate = "https://nll.com/game/%s"
)
