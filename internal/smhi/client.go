package smhi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Leopaexd/smhi-mcp/internal/metrics"
)

// DefaultBaseURL points at the pmp3g point forecast model.
const DefaultBaseURL = "https://opendata-download-metfcst.smhi.se/api/category/pmp3g/version/2/geotype/point"

var (
	// ErrStatus is returned on a non-2xx response from the API.
	ErrStatus = errors.New("unexpected status code from smhi api")

	// ErrPayload is returned when the response body cannot be decoded or
	// is missing required structural fields.
	ErrPayload = errors.New("malformed smhi payload")
)

// Client fetches point forecasts from the SMHI open-data API.
// It performs a single GET per call: no retries, no caching.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client using the given HTTP client. The caller owns
// timeout configuration on the client. An empty baseURL selects the default.
func NewClient(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

// PointForecast fetches the forecast time series for a coordinate.
// Coordinates are rounded to 6 decimals as the API expects.
func (c *Client) PointForecast(ctx context.Context, lat, lon float64) (*PointForecast, error) {
	lat = roundCoordinate(lat)
	lon = roundCoordinate(lon)

	url := fmt.Sprintf("%s/lon/%s/lat/%s/data.json", c.baseURL, formatCoordinate(lon), formatCoordinate(lat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.SMHIAPILatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SMHIAPICallsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("smhi request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.SMHIAPICallsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	var payload PointForecast
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}

	if len(payload.Geometry.Coordinates) == 0 || len(payload.Geometry.Coordinates[0]) < 2 {
		return nil, fmt.Errorf("%w: missing geometry coordinates", ErrPayload)
	}
	if len(payload.TimeSeries) == 0 {
		return nil, fmt.Errorf("%w: missing timeSeries", ErrPayload)
	}

	return &payload, nil
}

func roundCoordinate(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
