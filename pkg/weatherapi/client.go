// Package weatherapi fetches marine forecasts from the Open-Meteo marine API.
// The API is unauthenticated; the zero-value client is usable.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://marine-api.open-meteo.com/v1"

// Client fetches marine forecasts for a coordinate pair.
type Client interface {
	MarineForecast(ctx context.Context, lat, lon float64, days int) (*MarineForecast, error)
}

// MarineForecast is the daily marine forecast for one point.
type MarineForecast struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Daily     DailyBlock `json:"daily"`
}

// DailyBlock holds parallel per-day series.
type DailyBlock struct {
	Time               []string  `json:"time"`
	WaveHeightMax      []float64 `json:"wave_height_max"`
	WindWaveHeightMax  []float64 `json:"wind_wave_height_max"`
	SwellWaveHeightMax []float64 `json:"swell_wave_height_max"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a marine forecast client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) MarineForecast(ctx context.Context, lat, lon float64, days int) (*MarineForecast, error) {
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "wave_height_max,wind_wave_height_max,swell_wave_height_max")
	q.Set("forecast_days", fmt.Sprintf("%d", days))
	q.Set("timezone", "UTC")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/marine?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "weatherapi: create request")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "weatherapi: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "weatherapi: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("weatherapi: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result MarineForecast
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "weatherapi: unmarshal response")
	}

	return &result, nil
}
