package nhl

import (
	"context"
	"io"
	"net/http"
	"strings"

	"schedule-service/internal/domain"
	"schedule-service/internal/providers"
)

// Config controls how the NHL client reaches the api-web feed.
type Config struct {
	ScheduleURL string
	HTTPClient  *http.Client
}

// Client fetches the club-schedule feed and maps it to unified game records.
type Client struct {
	scheduleURL string
	httpClient  *http.Client
}

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	url := cfg.ScheduleURL
	if url == "" {
		url = defaultScheduleURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		scheduleURL: url,
		httpClient:  httpClient,
	}
}

// League reports the feed this client serves.
func (c *Client) League() domain.League {
	return domain.LeagueNHL
}

// FetchSchedule retrieves and normalizes the full club schedule.
func (c *Client) FetchSchedule(ctx context.Context) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scheduleURL, nil)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNHL, Message: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNHL, Message: "fetch schedule", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			League:     domain.LeagueNHL,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.FetchError{League: domain.LeagueNHL, Message: "read schedule", Err: err}
	}

	return Normalize(body, domain.LeagueNHL), nil
}
