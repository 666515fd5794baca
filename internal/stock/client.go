package stock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lunaracodes/gagwatch/internal/catalog"
)

// Fetcher defines the interface for fetching the current stock of a
// category. It is implemented by *Client and can be faked in tests.
type Fetcher interface {
	Fetch(ctx context.Context, category catalog.Category) ([]Entry, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrUnknownCategory is returned for a category without an endpoint.
var ErrUnknownCategory = errors.New("no endpoint for category")

// Client talks to the stock REST API.
type Client struct {
	endpoints map[catalog.Category]*url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultSeedsURL  = "https://gagapi.onrender.com/seeds"
	DefaultGearURL   = "https://gagapi.onrender.com/gear"
	DefaultTimeout   = 10 * time.Second
	defaultUserAgent = "gagwatch/0.1"
)

// NewClient builds a Client for the two stock endpoints. Empty URLs fall
// back to the public API; a non-positive timeout uses DefaultTimeout.
func NewClient(seedsURL, gearURL string, timeout time.Duration) (*Client, error) {
	seeds, err := parseEndpoint(seedsURL, DefaultSeedsURL)
	if err != nil {
		return nil, fmt.Errorf("seeds endpoint: %w", err)
	}
	gear, err := parseEndpoint(gearURL, DefaultGearURL)
	if err != nil {
		return nil, fmt.Errorf("gear endpoint: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoints: map[catalog.Category]*url.URL{
			catalog.Seeds: seeds,
			catalog.Gear:  gear,
		},
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch retrieves the items currently in stock for category. Any transport,
// status or decode failure is returned as an error with no entries.
func (c *Client) Fetch(ctx context.Context, category catalog.Category) ([]Entry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	endpoint, ok := c.endpoints[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	var payload []Entry
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return compact(payload), nil
}

// Endpoint returns the URL used for category, or "" when unknown.
func (c *Client) Endpoint(category catalog.Category) string {
	if c == nil {
		return ""
	}
	if u, ok := c.endpoints[category]; ok {
		return u.String()
	}
	return ""
}

func (c *Client) get(ctx context.Context, endpoint *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{URL: endpoint.String(), StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// compact drops entries without a name.
func compact(entries []Entry) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func parseEndpoint(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
