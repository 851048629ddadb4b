package hockeytech

import "time"

// Default feed URLs point at the HockeyTech modulekit schedule view for the
// tracked clubs (Hitmen team_id=202, Wranglers team_id=444). The embedded
// keys are the public per-league site keys the feeds require.
const (
	defaultWHLFeedURL = "https://lscluster.hockeytech.com/feed/?feed=modulekit&view=schedule&client_code=whl&key=41b145a848f4bd67&fmt=json&season_id=289&team_id=202"
	defaultAHLFeedURL = "https://lscluster.hockeytech.com/feed/?feed=modulekit&view=schedule&client_code=ahl&key=ccb91f29d6744675&fmt=json&season_id=90&team_id=444"

	defaultHTTPTimeout = 10 * time.Second

	logoURLTemplate    = "https://assets.leaguestat.com/%s/logos/%s.png"
	whlSummaryTemplate = "https://chl.ca/whl/gamecentre/%s/"
	ahlSummaryTemplate = "https://theahl.com/stats/game-center/%s"
)
