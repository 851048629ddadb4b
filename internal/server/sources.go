package server

import (
	"log/slog"
	"net/http"

	"schedule-service/internal/config"
	"schedule-service/internal/domain"
	"schedule-service/internal/logging"
	"schedule-service/internal/providers"
	"schedule-service/internal/providers/fixture"
	"schedule-service/internal/providers/hockeytech"
	"schedule-service/internal/providers/nhl"
	"schedule-service/internal/providers/nll"
)

// BuildSources constructs the configured schedule providers. The NLL token
// cache is created here once so it lives for the whole process, shared across
// aggregation runs. Unknown source names are logged and skipped.
func BuildSources(cfg config.Config, logger *slog.Logger) []providers.ScheduleProvider {
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	sources := make([]providers.ScheduleProvider, 0, len(cfg.Sources))
	for _, name := range cfg.Sources {
		switch name {
		case "nhl":
			sources = append(sources, nhl.NewClient(nhl.Config{
				ScheduleURL: cfg.NHL.ScheduleURL,
				HTTPClient:  httpClient,
			}))
		case "whl":
			sources = append(sources, hockeytech.NewClient(hockeytech.Config{
				League:     domain.LeagueWHL,
				FeedURL:    cfg.WHL.FeedURL,
				HTTPClient: httpClient,
			}))
		case "ahl":
			sources = append(sources, hockeytech.NewClient(hockeytech.Config{
				League:     domain.LeagueAHL,
				FeedURL:    cfg.AHL.FeedURL,
				HTTPClient: httpClient,
			}))
		case "nll":
			tokens := nll.NewTokenSource(nll.TokenConfig{
				TokenURL:     cfg.NLL.TokenURL,
				Audience:     cfg.NLL.Audience,
				ClientID:     cfg.NLL.ClientID,
				ClientSecret: cfg.NLL.ClientSecret,
				HTTPClient:   httpClient,
			})
			sources = append(sources, nll.NewClient(nll.Config{
				BaseURL:    cfg.NLL.BaseURL,
				LeagueID:   cfg.NLL.LeagueID,
				LevelID:    cfg.NLL.LevelID,
				SeasonID:   cfg.NLL.SeasonID,
				Tokens:     tokens,
				HTTPClient: httpClient,
			}))
		case "fixture":
			sources = append(sources, fixture.New())
		default:
			logging.Warn(logger, "unknown source, skipping", slog.String("source", name))
		}
	}
	return sources
}
