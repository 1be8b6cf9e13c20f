// Package provider lists the stream sources cine knows about and queries the
// direct-link ones together.
package provider

import (
	"context"

	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/cine-cli/cine/provider/torbox"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
)

// Kind tells how a provider's results are played.
type Kind int

const (
	// Crawl providers resolve embed pages to HLS or MP4 URLs.
	Crawl Kind = iota
	// Torrent providers return magnets streamed through webtorrent.
	Torrent
	// Direct providers return debrid HTTP links.
	Direct
)

// Provider represents a stream source.
type Provider struct {
	ID        string
	Name      string
	Kind      Kind
	Available func(*config.Settings) bool
	// Streams is set for Direct providers.
	Streams func(ctx context.Context, c *Clients, t stremio.Target) ([]stremio.DirectStream, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Clients are the addon clients direct providers share.
type Clients struct {
	Settings *config.Settings
	Addons   *stremio.Addons
	Torbox   *torbox.Client
}

// NewClients builds the addon clients from settings.
func NewClients(settings *config.Settings) *Clients {
	cfg := stremio.Config{
		ProxyPrefix:    settings.Network.ProxyPrefix,
		AcceptLanguage: settings.Network.AcceptLanguage,
	}
	return &Clients{
		Settings: settings,
		Addons:   stremio.NewAddons(cfg),
		Torbox:   torbox.New(cfg),
	}
}

func always(*config.Settings) bool { return true }

func hasTorbox(s *config.Settings) bool { return s.TorboxAPIKey != "" }

// Builtins returns every provider in presentation order.
func Builtins() []*Provider {
	return []*Provider{
		{ID: "vidsrc", Name: "VidSrc", Kind: Crawl, Available: always},
		{ID: "torrentio", Name: "Torrentio", Kind: Torrent, Available: always},
		{
			ID: "torbox", Name: "TorBox", Kind: Direct, Available: hasTorbox,
			Streams: func(ctx context.Context, c *Clients, t stremio.Target) ([]stremio.DirectStream, error) {
				return c.Torbox.Streams(ctx, c.Settings.TorboxAPIKey, t)
			},
		},
		{
			ID: "torrentio+torbox", Name: "Torrentio (TorBox)", Kind: Direct, Available: hasTorbox,
			Streams: func(ctx context.Context, c *Clients, t stremio.Target) ([]stremio.DirectStream, error) {
				return c.Addons.TorrentioTorbox(ctx, c.Settings.TorboxAPIKey, t)
			},
		},
		{
			ID: "streamthru", Name: "StreamThru", Kind: Direct,
			Available: func(s *config.Settings) bool { return s.StreamthruManifest != "" },
			Streams: func(ctx context.Context, c *Clients, t stremio.Target) ([]stremio.DirectStream, error) {
				return c.Addons.ManifestStreams(ctx, c.Settings.StreamthruManifest, t)
			},
		},
		{
			ID: "comet", Name: "Comet", Kind: Direct,
			Available: func(s *config.Settings) bool { return s.CometManifest != "" },
			Streams: func(ctx context.Context, c *Clients, t stremio.Target) ([]stremio.DirectStream, error) {
				return c.Addons.ManifestStreams(ctx, c.Settings.CometManifest, t)
			},
		},
	}
}

// Get finds a provider by ID.
func Get(id string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.ID == id
	})
}

// Configured returns the providers usable with settings, optionally of the given kinds only.
func Configured(settings *config.Settings, kinds ...Kind) []*Provider {
	return lo.Filter(Builtins(), func(p *Provider, _ int) bool {
		return p.Available(settings) && (len(kinds) == 0 || lo.Contains(kinds, p.Kind))
	})
}

// Result holds what one direct provider returned.
type Result struct {
	Provider *Provider
	Streams  []stremio.DirectStream
	Err      error
}

// Gather queries the given direct providers concurrently.
// Results keep the order of providers; each stream is tagged with its provider name.
func Gather(ctx context.Context, clients *Clients, providers []*Provider, t stremio.Target) []Result {
	direct := lo.Filter(providers, func(p *Provider, _ int) bool {
		return p.Kind == Direct && p.Streams != nil
	})

	return iter.Map(direct, func(p **Provider) Result {
		provider := *p
		streams, err := provider.Streams(ctx, clients, t)
		for i := range streams {
			streams[i].Source = provider.Name
		}
		return Result{Provider: provider, Streams: streams, Err: err}
	})
}

// Flatten concatenates the streams of successful results.
func Flatten(results []Result) []stremio.DirectStream {
	return lo.FlatMap(results, func(r Result, _ int) []stremio.DirectStream {
		if r.Err != nil {
			return nil
		}
		return r.Streams
	})
}
