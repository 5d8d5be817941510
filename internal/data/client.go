package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"agripulse-terminal/internal/model"
)

// Client provides methods to fetch data from the AgriPulse backend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a new AgriPulse backend client.
// If baseURL is empty, defaults to the local development backend.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000"
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TerminalQuery defines parameters for the compound analytics query.
type TerminalQuery struct {
	Commodity   string // e.g. "wheat"
	HarvestDays int    // days until harvest, 0..120
	Location    string // e.g. "Indore"
}

// TradeQuery defines parameters for a point-to-point trade simulation.
type TradeQuery struct {
	Commodity   string
	Source      string
	Destination string
	QtyTonnes   float64
	Domestic    bool
}

// APIError represents an error response from the AgriPulse backend.
// Detail carries the backend's structured error message when present.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("API returned status %d", e.StatusCode)
}

// errorBody matches the backend's structured error shape.
type errorBody struct {
	Detail string `json:"detail"`
}

// FetchTerminal fetches the compound analytics payload for one query snapshot.
//
// If caching is enabled (ENABLE_TERMINAL_CACHE=true), successful responses may
// be served from the in-memory cache. Caching is only for local development.
func (c *Client) FetchTerminal(ctx context.Context, q TerminalQuery) (*model.AnalyticsResult, error) {
	if q.Commodity == "" {
		return nil, fmt.Errorf("commodity is required")
	}
	if q.Location == "" {
		return nil, fmt.Errorf("location is required")
	}

	if cache := GetCache(); cache != nil {
		key := GenerateCacheKey(q)
		if cached, found := cache.Get(key); found {
			log.Printf("[AgriPulse] Cache hit: /terminal (commodity=%s, harvest_days=%d, location=%s)",
				q.Commodity, q.HarvestDays, q.Location)
			return cached, nil
		}
	}

	params := url.Values{}
	params.Set("commodity", q.Commodity)
	params.Set("harvest_days", strconv.Itoa(q.HarvestDays))
	params.Set("location", q.Location)

	var result model.AnalyticsResult
	if err := c.get(ctx, "/terminal", params, &result); err != nil {
		return nil, err
	}

	if cache := GetCache(); cache != nil {
		cache.Set(GenerateCacheKey(q), &result)
		log.Printf("[AgriPulse] Cached response (commodity=%s, location=%s)", q.Commodity, q.Location)
	}

	return &result, nil
}

// FetchDashboard fetches the weather/market/news/AI-summary payload for a city.
func (c *Client) FetchDashboard(ctx context.Context, location string) (*model.Dashboard, error) {
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	params := url.Values{}
	params.Set("location", location)

	var result model.Dashboard
	if err := c.get(ctx, "/dashboard", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchInternationalOptions fetches the static commodity/port catalog.
func (c *Client) FetchInternationalOptions(ctx context.Context) (*model.OptionCatalog, error) {
	var result model.OptionCatalog
	if err := c.get(ctx, "/terminal/international-options", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SimulateTrade runs one point-to-point trade simulation.
//
// A `{"error": "..."}` body decoded from a 200 response is a valid business
// outcome and is returned as data, not as an error.
func (c *Client) SimulateTrade(ctx context.Context, q TradeQuery) (*model.TradeResult, error) {
	params := url.Values{}
	params.Set("commodity", q.Commodity)
	params.Set("source", q.Source)
	params.Set("destination", q.Destination)
	params.Set("qty_tonnes", strconv.FormatFloat(q.QtyTonnes, 'f', -1, 64))
	params.Set("domestic", strconv.FormatBool(q.Domestic))

	var result model.TradeResult
	if err := c.get(ctx, "/terminal/simulate-trade", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get issues a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[AgriPulse] Request failed: GET %s: %v (duration: %v)", path, err, duration)
		return err
	}
	defer resp.Body.Close()

	log.Printf("[AgriPulse] Response: GET %s %d (duration: %v)", path, resp.StatusCode, duration)

	if resp.StatusCode != http.StatusOK {
		return apiErrorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[AgriPulse] Error decoding response: GET %s: %v", path, err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiErrorFromResponse extracts the structured detail field when the backend
// sends one, falling back to a status-based message.
func apiErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.Code = "NOT_FOUND"
	case http.StatusUnprocessableEntity:
		apiErr.Code = "INVALID_QUERY"
	case http.StatusTooManyRequests:
		apiErr.Code = "RATE_LIMIT_EXCEEDED"
	default:
		apiErr.Code = "API_ERROR"
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Detail != "" {
			apiErr.Detail = eb.Detail
		}
	}
	return apiErr
}
