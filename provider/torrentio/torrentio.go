// Package torrentio queries the Torrentio addon for torrents of a movie or episode.
package torrentio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// AltUserAgent is sent once more after the addon rejects the default one.
const AltUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0"

// ErrInvalidRequest is returned for movie or episode targets that cannot be queried.
var ErrInvalidRequest = stremio.ErrInvalidRequest

// Stream is a torrent offered by the addon.
type Stream struct {
	Name          string         `json:"name"`
	Title         string         `json:"title"`
	InfoHash      string         `json:"infoHash"`
	FileIdx       mo.Option[int] `json:"fileIdx"`
	BehaviorHints map[string]any `json:"behaviorHints"`
	Sources       []string       `json:"sources"`
}

// Filename returns the file name hinted by the addon, if any.
func (s Stream) Filename() string {
	name, _ := s.BehaviorHints["filename"].(string)
	return name
}

// Display renders "name | title  (idx=N)", falling back to the filename or the hash prefix.
func (s Stream) Display() string {
	var parts []string
	if s.Name != "" {
		parts = append(parts, strings.ReplaceAll(s.Name, "\n", " "))
	}
	if s.Title != "" {
		parts = append(parts, strings.ReplaceAll(s.Title, "\n", " "))
	}
	if len(parts) == 0 {
		if name := s.Filename(); name != "" {
			parts = append(parts, name)
		} else {
			parts = append(parts, s.InfoHash[:min(12, len(s.InfoHash))])
		}
	}

	idx := "idx=?"
	if i, ok := s.FileIdx.Get(); ok {
		idx = fmt.Sprintf("idx=%d", i)
	}
	return fmt.Sprintf("%s  (%s)", strings.Join(parts, " | "), idx)
}

// DisplayName is the name a magnet carries: the hinted filename, else the title.
func (s Stream) DisplayName() string {
	return lo.CoalesceOrEmpty(s.Filename(), s.Title)
}

// Magnet builds the magnet link of the stream.
func (s Stream) Magnet() string {
	return Magnet(s.InfoHash, s.DisplayName(), s.Sources)
}

// Client queries Torrentio.
type Client struct {
	base   string
	client *stremio.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another addon root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.base = strings.TrimRight(base, "/")
	}
}

// New returns a client. The proxy prefix, when set, wraps Torrentio URLs only.
func New(config stremio.Config, opts ...Option) *Client {
	c := &Client{
		base:   stremio.TorrentioBase,
		client: stremio.NewClient(config, "torrentio.strem.fun"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Streams lists the torrents for t. Entries without an info hash are dropped.
func (c *Client) Streams(ctx context.Context, t stremio.Target) ([]Stream, error) {
	path, err := t.Path()
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Referer", stremio.TorrentioBase+"/")
	headers.Set("Origin", stremio.TorrentioBase)

	var doc struct {
		Streams []Stream `json:"streams"`
	}
	url := c.base + path

	err = c.client.GetJSON(ctx, url, &doc, headers)
	var statusErr *stremio.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusForbidden {
		log.Debugf("torrentio: forbidden, retrying with an alternate user agent")
		headers.Set("User-Agent", AltUserAgent)
		err = c.client.GetJSON(ctx, url, &doc, headers)
	}
	if err != nil {
		return nil, fmt.Errorf("torrentio: %w", err)
	}

	return lo.Filter(doc.Streams, func(s Stream, _ int) bool {
		return s.InfoHash != ""
	}), nil
}
