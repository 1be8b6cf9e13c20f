package stremio

import (
	"context"
	"strings"
)

// TorrentioBase is the public Torrentio addon.
const TorrentioBase = "https://torrentio.strem.fun"

// Addons queries user-configured addon manifests. Proxy wrapping applies to every host.
type Addons struct {
	client        *Client
	torrentioBase string
}

// NewAddons returns an addon client for config.
func NewAddons(config Config) *Addons {
	return &Addons{client: NewClient(config), torrentioBase: TorrentioBase}
}

// ManifestParent strips a trailing /manifest.json and slashes from an addon URL.
func ManifestParent(manifestURL string) string {
	return strings.TrimRight(strings.TrimSuffix(manifestURL, "/manifest.json"), "/")
}

// ManifestStreams lists the direct streams the addon behind manifestURL offers for t.
func (a *Addons) ManifestStreams(ctx context.Context, manifestURL string, t Target) ([]DirectStream, error) {
	return a.streams(ctx, ManifestParent(manifestURL), t)
}

// TorrentioTorbox lists Torrentio results resolved to TorBox download links.
func (a *Addons) TorrentioTorbox(ctx context.Context, apiKey string, t Target) ([]DirectStream, error) {
	return a.streams(ctx, a.torrentioBase+"/torbox="+apiKey, t)
}

func (a *Addons) streams(ctx context.Context, base string, t Target) ([]DirectStream, error) {
	path, err := t.Path()
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := a.client.GetJSON(ctx, base+path, &doc, nil); err != nil {
		return nil, err
	}
	return DirectStreams(doc), nil
}
