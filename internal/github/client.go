// Package github provides a client for fetching Copilot metrics and premium
// billing data from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	requestTimeout = 15 * time.Second
	maxBodySize    = 8 << 20 // metrics payloads carry up to 100 nested days
)

var (
	// ErrUnauthorized indicates the token is missing a scope, expired, or invalid.
	ErrUnauthorized = errors.New("github: unauthorized (token invalid or missing scope)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("github: rate limited")
	// ErrNotFound indicates the org does not exist or has no Copilot data.
	ErrNotFound = errors.New("github: not found (check org name and Copilot access)")
)

// Client fetches org-level Copilot data from the GitHub API.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given token. Returns nil if the token
// is empty. An empty baseURL uses the public API.
func NewClient(token, baseURL string) *Client {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

// FetchMetrics returns the raw daily metric records for the org. The feed
// covers the trailing lookback window the API grants (up to 100 days) in
// whatever order the API chooses; callers must not assume it is sorted.
func (c *Client) FetchMetrics(ctx context.Context, org string) ([]MetricsDay, error) {
	body, err := c.get(ctx, fmt.Sprintf("/orgs/%s/copilot/metrics", org))
	if err != nil {
		return nil, err
	}

	var days []MetricsDay
	if err := json.Unmarshal(body, &days); err != nil {
		return nil, fmt.Errorf("github: parsing metrics: %w", err)
	}
	return days, nil
}

// FetchPremiumUsage returns the premium-request billing feed for one month.
func (c *Client) FetchPremiumUsage(ctx context.Context, org string, year, month int) (*PremiumUsage, error) {
	path := fmt.Sprintf("/organizations/%s/settings/billing/premium_request/usage?year=%d&month=%d",
		org, year, month)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var usage PremiumUsage
	if err := json.Unmarshal(body, &usage); err != nil {
		return nil, fmt.Errorf("github: parsing premium usage: %w", err)
	}
	return &usage, nil
}

// get performs an authenticated GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("github: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", "copgauge/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("github: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("github: reading response: %w", err)
	}
	return body, nil
}
