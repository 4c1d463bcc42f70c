// Package nws talks to the National Weather Service HTTP API. It is the
// only component in the server that performs outbound network I/O.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const acceptGeoJSON = "application/geo+json"

// Client issues GET requests against the NWS API with the fixed headers
// the service requires.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates an NWS API client.
func NewClient(baseURL, userAgent string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// AlertsURL builds the active-alerts query for a two-letter state code.
func (c *Client) AlertsURL(state string) string {
	return fmt.Sprintf("%s/alerts?area=%s", c.baseURL, url.QueryEscape(state))
}

// PointsURL builds the grid-point lookup for a coordinate. The NWS points
// endpoint expects latitude and longitude rounded to four decimal places.
func (c *Client) PointsURL(lat, lon float64) string {
	return fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon)
}

// Fetch issues a GET against rawURL and decodes the JSON body into T.
// Network failures, non-2xx statuses, and undecodable bodies all collapse
// into a nil result; the cause is logged here and callers only learn that
// the lookup failed. The body is not validated structurally, so absent
// fields simply stay at their zero values.
func Fetch[T any](ctx context.Context, c *Client, rawURL string) *T {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.logger.Error().Err(err).Str("url", rawURL).Msg("build NWS request")
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", rawURL).Msg("NWS request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().Int("status", resp.StatusCode).Str("url", rawURL).Msg("NWS request returned non-success status")
		return nil
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Error().Err(err).Str("url", rawURL).Msg("decode NWS response")
		return nil
	}

	c.logger.Debug().Str("url", rawURL).Int("status", resp.StatusCode).Msg("NWS request succeeded")
	return &out
}
