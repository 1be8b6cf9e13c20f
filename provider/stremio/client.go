package stremio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/network"
)

// UserAgent is the default browser string addons are queried with.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Config is shared by every addon client.
type Config struct {
	ProxyPrefix    string
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// StatusError is a non-200 answer from an addon.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Code)
}

// Client fetches addon JSON with browser-like headers.
type Client struct {
	http    *http.Client
	proxy   network.Proxy
	headers network.Headers
	timeout time.Duration
}

// NewClient returns a client whose proxy, when configured, wraps only URLs of proxyDomains.
// Without proxyDomains every URL is wrapped.
func NewClient(config Config, proxyDomains ...string) *Client {
	c := &Client{
		http:  config.HTTPClient,
		proxy: network.Proxy{Prefix: config.ProxyPrefix, Domains: proxyDomains},
		headers: network.Headers{
			UserAgent:      config.UserAgent,
			Accept:         network.AcceptJSON,
			AcceptLanguage: config.AcceptLanguage,
		},
		timeout: config.Timeout,
	}

	if c.http == nil {
		c.http = network.Client
	}
	if c.headers.UserAgent == "" {
		c.headers.UserAgent = UserAgent
	}
	if c.headers.AcceptLanguage == "" {
		c.headers.AcceptLanguage = "en-US,en;q=0.9"
	}
	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}

	return c
}

// GetJSON decodes the JSON document at rawURL into v. Headers in extra take precedence.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any, extra http.Header) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxy.Wrap(rawURL), nil)
	if err != nil {
		return err
	}
	for k, vals := range extra {
		req.Header[k] = vals
	}
	c.headers.Apply(req)

	log.WithFields(log.Fields{"url": redact(rawURL)}).Debug("stremio: GET")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, URL: redact(rawURL)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", redact(rawURL), err)
	}
	return nil
}

// redact hides path segments that look like API keys.
func redact(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	for i, p := range parts {
		if i < 3 {
			continue
		}
		if _, key, ok := strings.Cut(p, "="); ok && len(key) >= 16 {
			parts[i] = p[:len(p)-len(key)] + "***"
		} else if len(p) >= 32 && !strings.Contains(p, ".") && !strings.Contains(p, ":") {
			parts[i] = "***"
		}
	}
	return strings.Join(parts, "/")
}
