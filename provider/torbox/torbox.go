// Package torbox queries the TorBox Stremio addon for cached debrid links.
package torbox

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cine-cli/cine/provider/stremio"
)

// BaseURL is the TorBox addon root.
const BaseURL = "https://stremio.torbox.app"

// ErrMissingAPIKey is returned when no TorBox key is configured.
var ErrMissingAPIKey = errors.New("TorBox API key is not configured")

// Client queries TorBox.
type Client struct {
	base   string
	client *stremio.Client
}

// New returns a client. The proxy prefix, when set, wraps torbox.app URLs only.
func New(config stremio.Config) *Client {
	return &Client{
		base:   BaseURL,
		client: stremio.NewClient(config, "torbox.app"),
	}
}

// WithBaseURL returns a copy of c querying another root.
func (c *Client) WithBaseURL(base string) *Client {
	clone := *c
	clone.base = strings.TrimRight(base, "/")
	return &clone
}

// Streams lists the direct links TorBox offers for t.
func (c *Client) Streams(ctx context.Context, apiKey string, t stremio.Target) ([]stremio.DirectStream, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	path, err := t.Path()
	if err != nil {
		return nil, err
	}

	var doc stremio.Document
	if err := c.client.GetJSON(ctx, c.base+"/"+apiKey+path, &doc, nil); err != nil {
		return nil, fmt.Errorf("torbox: %w", err)
	}
	return stremio.DirectStreams(doc), nil
}
