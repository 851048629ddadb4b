package nll

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"schedule-service/internal/domain"
	"schedule-service/internal/providers"
)

// Config controls how the NLL client reaches the Champion Data API.
type Config struct {
	BaseURL    string
	LeagueID   int
	LevelID    int
	SeasonID   int
	Tokens     *TokenSource
	HTTPClient *http.Client
}

// Client fetches the NLL season schedule with bearer authentication and maps
// it to unified game records.
type Client struct {
	baseURL    string
	leagueID   int
	levelID    int
	seasonID   int
	tokens     *TokenSource
	httpClient *http.Client
}

// NewClient constructs an NLL client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	leagueID := cfg.LeagueID
	if leagueID == 0 {
		leagueID = defaultLeagueID
	}
	levelID := cfg.LevelID
	if levelID == 0 {
		levelID = defaultLevelID
	}
	seasonID := cfg.SeasonID
	if seasonID == 0 {
		seasonID = defaultSeasonID
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		leagueID:   leagueID,
		levelID:    levelID,
		seasonID:   seasonID,
		tokens:     cfg.Tokens,
		httpClient: httpClient,
	}
}

// League reports the feed this client serves.
func (c *Client) League() domain.League {
	return domain.LeagueNLL
}

// FetchSchedule retrieves and normalizes the Roughnecks subset of the season
// schedule. Token-exchange failures propagate unchanged.
func (c *Client) FetchSchedule(ctx context.Context) ([]domain.Game, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNLL, Message: "acquire token", Err: err}
	}

	url := fmt.Sprintf("%s/v1/leagues/%d/levels/%d/seasons/%d/schedule", c.baseURL, c.leagueID, c.levelID, c.seasonID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNLL, Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNLL, Message: "fetch schedule", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			League:     domain.LeagueNLL,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload schedulePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNLL, Message: "decode schedule", Err: err}
	}

	return Normalize(payload, domain.LeagueNLL), nil
}
