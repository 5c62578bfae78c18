// Package doapi is a minimal DigitalOcean API client covering the
// marketplace 1-Click endpoints.
package doapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mamercad/clickops/internal/types"
)

const (
	// DefaultBaseURL is the public DigitalOcean API endpoint.
	DefaultBaseURL = "https://api.digitalocean.com"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second

	userAgent = "clickops"
)

// Config holds everything needed to construct a Client.
type Config struct {
	Token   string        `mapstructure:"token"`
	BaseURL string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Client issues authenticated requests against the DigitalOcean API.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

// NewClient validates the configuration and builds a Client. A missing token
// is a precondition failure; it is reported here, before any network attempt.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("doapi: missing API token")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("doapi: invalid base URL %q: %w", cfg.BaseURL, err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// ResponseError is a non-2xx answer from the API.
type ResponseError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("digitalocean api: %d %s: %s", e.StatusCode, e.Reason, e.Message)
}

// apiErrorBody is the JSON error envelope the API returns alongside non-2xx
// status codes, e.g. {"id":"unauthorized","message":"Unable to authenticate you"}.
type apiErrorBody struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type oneClicksResponse struct {
	OneClicks []types.OneClick `json:"1_clicks"`
}

// ListOneClicks fetches the full 1-Click application catalog. It performs a
// single GET; pagination and retries are the caller's concern, which for this
// endpoint means nobody's (the catalog comes back in one page).
func (c *Client) ListOneClicks(ctx context.Context) ([]types.OneClick, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v2/1-clicks")
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing 1-clicks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp)
	}

	var payload oneClicksResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding 1-clicks response: %w", err)
	}
	return payload.OneClicks, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

func (c *Client) responseError(resp *http.Response) error {
	respErr := &ResponseError{
		StatusCode: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil {
		var apiErr apiErrorBody
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			respErr.Message = apiErr.Message
		}
	}
	if respErr.Message == "" {
		respErr.Message = respErr.Reason
	}
	return respErr
}
