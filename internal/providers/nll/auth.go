package nll

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenSource exchanges client credentials for a bearer token and caches it
// for the lifetime of the process. The cache is an explicit {value, expiresAt}
// pair constructed once at startup and shared by every NLL fetch; a token is
// reused until fewer than 5 minutes of validity remain.
type TokenSource struct {
	tokenURL     string
	audience     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// TokenConfig controls the client-credentials exchange.
type TokenConfig struct {
	TokenURL     string
	Audience     string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
}

// NewTokenSource constructs a process-lifetime token cache.
func NewTokenSource(cfg TokenConfig) *TokenSource {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	audience := cfg.Audience
	if audience == "" {
		audience = defaultAudience
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &TokenSource{
		tokenURL:     tokenURL,
		audience:     audience,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   httpClient,
		now:          time.Now,
	}
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid access token, refreshing through the token endpoint
// when the cached one is missing or close to expiry. Exchange failures
// propagate to the caller; the fetcher boundary above degrades them.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.expiresAt.After(ts.now().Add(tokenExpiryLeeway)) {
		return ts.token, nil
	}

	body, err := json.Marshal(tokenRequest{
		ClientID:     ts.clientID,
		ClientSecret: ts.clientSecret,
		Audience:     ts.audience,
		GrantType:    "client_credentials",
	})
	if err != nil {
		return "", fmt.Errorf("nll: encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("nll: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("nll: token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("nll: token exchange status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("nll: decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("nll: token response missing access_token")
	}

	ts.token = payload.AccessToken
	ts.expiresAt = ts.now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	return ts.token, nil
}
