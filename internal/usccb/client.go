// Package usccb fetches daily Mass readings from the USCCB website.
//
// The site has no API: responses are opaque markup from which the individual
// readings are extracted by pattern matching. Fetching is strictly
// best-effort and never fails: a direct request is tried first, then the
// same URL through a public CORS relay, and when both attempts or the
// extraction miss, the caller gets the static fallback reading for the
// requested date.
package usccb

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Client fetches daily readings with a direct -> proxy -> fallback cascade.
type Client struct {
	directClient *http.Client
	proxyClient  *http.Client
	baseURL      string
	proxyURL     string
}

// NewClient creates a readings client. proxyURL is the CORS relay prefix the
// target URL is appended to, query-escaped; pass "" to disable the proxy tier.
func NewClient(baseURL, proxyURL string, directTimeout, proxyTimeout time.Duration) *Client {
	return &Client{
		directClient: &http.Client{Timeout: directTimeout},
		proxyClient:  &http.Client{Timeout: proxyTimeout},
		baseURL:      baseURL,
		proxyURL:     proxyURL,
	}
}

// NewDefaultClient creates a client against the production USCCB endpoints.
func NewDefaultClient() *Client {
	return NewClient(
		"https://bible.usccb.org/bible/readings",
		"https://api.allorigins.win/raw?url=",
		10*time.Second,
		15*time.Second,
	)
}

// GetDailyReading returns the readings for a date. It never returns nil: any
// fetch or extraction failure degrades to the static fallback, and the three
// sub-readings are extracted independently, so a partial match keeps the
// fallback text only for the missing pieces.
func (c *Client) GetDailyReading(ctx context.Context, date time.Time) *entities.Reading {
	reading := FallbackReading(date)

	html, err := c.fetchDirect(ctx, date)
	if err != nil {
		log.Printf("USCCB: direct fetch failed (%v), trying CORS proxy", err)
		html, err = c.fetchViaProxy(ctx, date)
	}
	if err != nil {
		log.Printf("USCCB: proxy fetch failed (%v), using fallback reading", err)
		return reading
	}

	extractReadings(html, reading)
	return reading
}

func (c *Client) fetchDirect(ctx context.Context, date time.Time) (string, error) {
	return c.get(ctx, c.directClient, c.readingURL(date))
}

func (c *Client) fetchViaProxy(ctx context.Context, date time.Time) (string, error) {
	if c.proxyURL == "" {
		return "", fmt.Errorf("no proxy configured")
	}
	proxied := c.proxyURL + url.QueryEscape(c.readingURL(date))
	return c.get(ctx, c.proxyClient, proxied)
}

// readingURL builds the source URL; the site keys pages by MMDDYYYY.
func (c *Client) readingURL(date time.Time) string {
	return fmt.Sprintf("%s/%s.cfm", c.baseURL, date.Format("01022006"))
}

func (c *Client) get(ctx context.Context, client *http.Client, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch readings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(body), nil
}
