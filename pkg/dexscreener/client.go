package dexscreener

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.dexscreener.com"

	// MaxBatchAddresses is the upstream per-request limit on the token
	// lookup endpoint.
	MaxBatchAddresses = 30
)

// Client performs read-only lookups against the DexScreener API.
type Client interface {
	LatestProfiles(ctx context.Context) ([]TokenProfile, error)
	LatestBoosts(ctx context.Context) ([]TokenProfile, error)
	TopBoosts(ctx context.Context) ([]TokenProfile, error)
	Pairs(ctx context.Context, chainID string, addresses []string) ([]Pair, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
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

	// DexScreener rate-limits the feed endpoints (60 rpm) separately from
	// the token lookup endpoint (300 rpm).
	feedLimiter *rate.Limiter
	pairLimiter *rate.Limiter
}

// NewClient creates a DexScreener API client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		feedLimiter: rate.NewLimiter(1, 5),
		pairLimiter: rate.NewLimiter(5, 10),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) LatestProfiles(ctx context.Context) ([]TokenProfile, error) {
	return c.feed(ctx, "/token-profiles/latest/v1")
}

func (c *httpClient) LatestBoosts(ctx context.Context) ([]TokenProfile, error) {
	return c.feed(ctx, "/token-boosts/latest/v1")
}

func (c *httpClient) TopBoosts(ctx context.Context) ([]TokenProfile, error) {
	return c.feed(ctx, "/token-boosts/top/v1")
}

func (c *httpClient) feed(ctx context.Context, path string) ([]TokenProfile, error) {
	if err := c.feedLimiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "dexscreener: rate limiter wait")
	}

	var profiles []TokenProfile
	if err := c.getJSON(ctx, path, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *httpClient) Pairs(ctx context.Context, chainID string, addresses []string) ([]Pair, error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	if len(addresses) > MaxBatchAddresses {
		return nil, eris.Errorf("dexscreener: %d addresses exceeds batch limit %d", len(addresses), MaxBatchAddresses)
	}

	if err := c.pairLimiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "dexscreener: rate limiter wait")
	}

	var pairs []Pair
	path := "/tokens/v1/" + chainID + "/" + strings.Join(addresses, ",")
	if err := c.getJSON(ctx, path, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return eris.Wrap(err, "dexscreener: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "dexscreener: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "dexscreener: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("dexscreener: unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "dexscreener: unmarshal response")
	}

	return nil
}
