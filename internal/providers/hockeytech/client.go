package hockeytech

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"schedule-service/internal/domain"
	"schedule-service/internal/providers"
)

// Config controls how the HockeyTech client reaches the upstream feed.
type Config struct {
	League     domain.League
	FeedURL    string
	HTTPClient *http.Client
}

// Client fetches one HockeyTech modulekit schedule feed and maps it to
// unified game records. WHL and AHL share this client with different
// configuration.
type Client struct {
	league     domain.League
	feedURL    string
	httpClient *http.Client
}

// NewClient constructs a HockeyTech client for the given league.
func NewClient(cfg Config) *Client {
	return &Client{
		league:     cfg.League,
		feedURL:    resolveFeedURL(cfg),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// League reports which feed this client is configured for.
func (c *Client) League() domain.League {
	return c.league
}

// FetchSchedule retrieves and normalizes the full feed schedule.
func (c *Client) FetchSchedule(ctx context.Context) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, &providers.FetchError{League: c.league, Message: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{League: c.league, Message: "fetch schedule", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			League:     c.league,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	// The feed's shape varies per league and season, so it is decoded
	// untyped and walked by the normalizer.
	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.FetchError{League: c.league, Message: "decode schedule", Err: err}
	}

	return Normalize(payload, c.league), nil
}

func resolveFeedURL(cfg Config) string {
	if cfg.FeedURL != "" {
		return cfg.FeedURL
	}
	switch cfg.League {
	case domain.LeagueAHL:
		return defaultAHLFeedURL
	default:
		return defaultWHLFeedURL
	}
}

func resolveHTTPClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
