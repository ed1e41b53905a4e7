// Package nyt wraps the single remote operation of the NY Times
// most-popular API and translates every transport, HTTP and decoding
// failure into the closed error taxonomy before it leaves this layer.
package nyt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
)

const (
	// DefaultBaseURL is the published base of the viewed most-popular feed.
	DefaultBaseURL = "https://api.nytimes.com/svc/mostpopular/v2/viewed"

	apiKeyParam    = "api-key"
	defaultTimeout = 30 * time.Second
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient builds a client authenticated with apiKey. The transport
// carries a 30s timeout; on expiry the failure surfaces as a network
// error through the normal error channel.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchMostPopular issues exactly one GET for the period's window. An
// invalid period fails with a validation error before any request is
// made. No retries happen at this layer.
func (c *Client) FetchMostPopular(ctx context.Context, period domain.Period) (*Response, error) {
	if !period.IsValid() {
		return nil, apperr.NewValidation(fmt.Sprintf("invalid period %q: must be one of 1, 7 or 30", string(period)))
	}

	endpoint := fmt.Sprintf("%s/%s.json?%s=%s", c.baseURL, period.Value(), apiKeyParam, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "build most popular request", err)
	}

	slog.Debug("Fetching most popular articles", "period", period.Value())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetwork, "most popular request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Most popular request rejected", "period", period.Value(), "status", resp.StatusCode)
		return nil, apperr.FromStatusCode(resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "decode most popular response", err)
	}

	slog.Debug("Fetched most popular articles", "period", period.Value(), "num_results", out.NumResults)
	return &out, nil
}
