// Package tmdb is a small client for the TMDB v3 catalog API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/internal/cache"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/network"
)

// BaseURL is the production API root.
const BaseURL = "https://api.themoviedb.org/3"

// ErrNoAPIKey is returned by every call of a client built without a key.
var ErrNoAPIKey = errors.New("tmdb: missing API key")

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Code int
	Path string
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: GET %s: status %d: %s", e.Path, e.Code, e.Body)
}

// Temporary reports whether retrying may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Client talks to TMDB. It is safe for concurrent use.
type Client struct {
	apiKey   string
	language string
	base     string
	http     *http.Client
	cached   bool
	attempts uint
	delay    time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.base = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithCache toggles the on-disk response cache.
func WithCache(enabled bool) Option {
	return func(c *Client) {
		c.cached = enabled
	}
}

// WithRetry sets the attempt count and the initial backoff delay.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// New returns a client for apiKey. An empty language defaults to en-US.
func New(apiKey, language string, opts ...Option) *Client {
	if language == "" {
		language = "en-US"
	}

	c := &Client{
		apiKey:   apiKey,
		language: language,
		base:     BaseURL,
		http:     network.Client,
		cached:   true,
		attempts: 3,
		delay:    300 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get fetches path into v, serving fresh responses from the cache.
// Rate limits, server errors and transport failures are retried with exponential backoff.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	params = maps.Clone(params)
	if params == nil {
		params = url.Values{}
	}
	params.Set("language", c.language)

	cacheKey := cache.GenerateKey(path+"?"+params.Encode(), "tmdb")
	if c.cached && cache.Read(cacheKey, v) {
		return nil
	}

	params.Set("api_key", c.apiKey)
	endpoint := c.base + path + "?" + params.Encode()

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.fetch(ctx, path, endpoint)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WithFields(log.Fields{"path": path, "attempt": n + 1}).Debugf("tmdb: retrying: %v", err)
		}),
	)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", path, err)
	}

	if c.cached {
		if err := cache.Write(cacheKey, v); err != nil {
			log.Debugf("tmdb: cache write: %v", err)
		}
	}

	return nil
}

func (c *Client) fetch(ctx context.Context, path, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		statusErr := &StatusError{Code: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(snippet))}
		if statusErr.Temporary() {
			return nil, statusErr
		}
		return nil, retry.Unrecoverable(statusErr)
	}

	return io.ReadAll(resp.Body)
}
