package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sethvargo/go-retry"
)

// ClientConfig holds connection settings for the remote puzzle table.
// Values come from the environment so deployments can repoint the arcade
// without a rebuild.
type ClientConfig struct {
	BaseURL string        `env:"MINICADE_CONTENT_URL"`
	APIKey  string        `env:"MINICADE_CONTENT_KEY"`
	Timeout time.Duration `env:"MINICADE_CONTENT_TIMEOUT" envDefault:"5s"`
}

// LoadClientConfig reads client configuration from the environment.
func LoadClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("content: cannot parse environment: %w", err)
	}
	return cfg, nil
}

// Client reads puzzle rows from a REST-like table endpoint.
// The query shape is GET <base>/rest/v1/puzzles?game=eq.<id>&limit=<n> with
// the API key passed as an "apikey" header.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient creates a content client for the given configuration.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a remote endpoint is set.
// An unconfigured client always serves the fallback dataset.
func (c *Client) Configured() bool {
	return c.cfg.BaseURL != ""
}

// FetchPuzzles reads up to limit puzzle rows for the given game.
// The single fetch is wrapped in a short bounded backoff; transport and 5xx
// errors are retried, anything else fails immediately.
func (c *Client) FetchPuzzles(ctx context.Context, game string, limit int) ([]Puzzle, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("content: no remote endpoint configured")
	}
	if limit <= 0 {
		limit = 20
	}

	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("content: invalid base URL %q: %w", c.cfg.BaseURL, err)
	}
	endpoint = endpoint.JoinPath("rest", "v1", "puzzles")

	q := endpoint.Query()
	q.Set("game", "eq."+game)
	q.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = q.Encode()

	var puzzles []Puzzle
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		rows, fetchErr := c.fetchOnce(ctx, endpoint.String())
		if fetchErr != nil {
			return fetchErr
		}
		puzzles = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Drop malformed rows rather than failing the whole batch
	valid := puzzles[:0]
	for _, p := range puzzles {
		if p.Valid() {
			valid = append(valid, p)
		}
	}
	return valid, nil
}

// fetchOnce performs a single GET against the puzzle table.
func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]Puzzle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("content: cannot build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("apikey", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("content: fetch failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, retry.RetryableError(fmt.Errorf("content: server error: %s", resp.Status))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content: unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("content: cannot read response: %w", err))
	}

	var puzzles []Puzzle
	if err := json.Unmarshal(body, &puzzles); err != nil {
		return nil, fmt.Errorf("content: cannot decode response: %w", err)
	}
	return puzzles, nil
}

// FetchOrFallback fetches remote rows for the game, falling back to the
// embedded dataset on any error. Mirrors the one try/catch per fetch the
// games were built around: the game always starts with something to show.
func (c *Client) FetchOrFallback(ctx context.Context, game string, limit int) []Puzzle {
	if c != nil && c.Configured() {
		if puzzles, err := c.FetchPuzzles(ctx, game, limit); err == nil && len(puzzles) > 0 {
			return puzzles
		}
	}
	return Fallback(game)
}
