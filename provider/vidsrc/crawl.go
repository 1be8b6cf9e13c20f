package vidsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/network"
	"github.com/cine-cli/cine/where"
	"github.com/samber/mo"
)

// maxBody caps how much of a page is read.
const maxBody = 4 << 20

// Config is the process-independent configuration of a Resolver.
type Config struct {
	// Domains are the embed mirrors, in priority order. Proxy wrapping applies to them only.
	Domains []string
	// RelayFallback is the relay host always tried after the discovered ones.
	RelayFallback  string
	ProxyPrefix    string
	UserAgent      string
	AcceptLanguage string
	DumpHTML       bool
	DumpDir        string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Domains:        []string{"vidsrc.xyz"},
		RelayFallback:  "cloudnestra.com",
		UserAgent:      constant.UserAgent,
		AcceptLanguage: "en-US,en;q=0.9",
		DumpDir:        where.Dumps(),
	}
}

// Limits bound a single resolution.
type Limits struct {
	// MaxHosts caps the embed URLs attempted.
	MaxHosts int
	// MaxPages caps the fetches made while crawling from one embed URL.
	MaxPages int
	// Timeout applies to every single fetch.
	Timeout time.Duration
}

// DefaultLimits returns 3 embed attempts, 20 pages per attempt and 8 seconds per fetch.
func DefaultLimits() Limits {
	return Limits{MaxHosts: 3, MaxPages: 20, Timeout: 8 * time.Second}
}

func (l Limits) orDefaults() Limits {
	d := DefaultLimits()
	if l.MaxHosts <= 0 {
		l.MaxHosts = d.MaxHosts
	}
	if l.MaxPages <= 0 {
		l.MaxPages = d.MaxPages
	}
	if l.Timeout <= 0 {
		l.Timeout = d.Timeout
	}
	return l
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithClient replaces the HTTP client.
func WithClient(client *http.Client) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

// WithExtractors appends child reference extractors after the built-in ones.
func WithExtractors(extractors ...Extractor) Option {
	return func(r *Resolver) {
		r.children = append(r.children, extractors...)
	}
}

// Resolver crawls embed pages. It holds no per-resolution state and is safe for
// concurrent use.
type Resolver struct {
	config   Config
	client   *http.Client
	proxy    network.Proxy
	headers  network.Headers
	children []Extractor
}

// New returns a Resolver for config.
func New(config Config, opts ...Option) *Resolver {
	r := &Resolver{
		config:   config,
		client:   network.Client,
		proxy:    network.Proxy{Prefix: config.ProxyPrefix, Domains: config.Domains},
		headers:  sessionHeaders(config),
		children: append([]Extractor(nil), ChildExtractors...),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// entry is a page waiting in the crawl queue together with the relay chain it belongs to.
type entry struct {
	url       string
	referrer  mo.Option[string]
	token     mo.Option[string]
	relayHost mo.Option[string]
}

// follow derives a child entry that keeps the relay chain of e.
func (e entry) follow(url string) entry {
	return entry{
		url:       url,
		referrer:  mo.Some(e.url),
		token:     e.token,
		relayHost: e.relayHost,
	}
}

// Resolve finds direct stream URLs for req.
// Network failures are absorbed: no streams yields an empty result and a nil error.
// Errors are ErrInvalidRequest, returned before any request, or the context error.
func (r *Resolver) Resolve(ctx context.Context, req Request, limits Limits) ([]Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	limits = limits.orDefaults()
	dump := newDumper(r.config)

	for i, embedURL := range EmbedURLs(r.config.Domains, req) {
		if i >= limits.MaxHosts {
			break
		}

		candidates, err := r.attempt(ctx, i+1, embedURL, limits, dump)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	return nil, nil
}

// attempt crawls breadth-first from one embed page and returns the media of the
// first page that has any.
func (r *Resolver) attempt(ctx context.Context, n int, embedURL string, limits Limits, dump *dumper) ([]Candidate, error) {
	logger := log.WithFields(log.Fields{"embed": embedURL})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	embedHTML, ok := r.fetch(ctx, embedURL, nil, limits.Timeout).Get()
	if !ok {
		logger.Debug("vidsrc: embed page unavailable")
		return nil, ctx.Err()
	}
	dump.embed(n, embedHTML)

	embedHost := network.HostOf(embedURL)
	root := entry{url: embedURL}

	var queue []entry
	for _, token := range HiddenTokens(embedHTML) {
		for _, host := range RelayHosts(embedHTML, embedHost, r.config.RelayFallback) {
			queue = append(queue, entry{
				url:       fmt.Sprintf("https://%s/rcp/%s", host, token),
				referrer:  mo.Some(embedURL),
				token:     mo.Some(token),
				relayHost: mo.Some(host),
			})
		}
	}
	for _, child := range r.childReferences(embedHTML) {
		queue = append(queue, root.follow(Absolutize(embedHost, child)))
	}

	visited := make(map[string]struct{})
	pages := 0

	for len(queue) > 0 && pages < limits.MaxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e := queue[0]
		queue = queue[1:]

		if _, seen := visited[e.url]; seen {
			continue
		}
		visited[e.url] = struct{}{}
		pages++

		html, ok := r.fetch(ctx, e.url, hopHeaders(e), limits.Timeout).Get()
		if !ok {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			logger.WithField("url", e.url).Debug("vidsrc: hop failed")
			continue
		}
		dump.hop(n, pages, html)

		if found := DirectMedia(html); len(found) > 0 {
			logger.WithFields(log.Fields{
				"url":   e.url,
				"relay": e.relayHost.OrEmpty(),
				"found": len(found),
			}).Debug("vidsrc: media found")
			return candidatesFrom(e, found), nil
		}

		host := network.HostOf(e.url)
		for _, child := range r.childReferences(html) {
			queue = append(queue, e.follow(Absolutize(host, child)))
		}
		if nested, ok := NestedReference(html).Get(); ok {
			queue = append(queue, e.follow(Absolutize(host, nested)))
		}
	}

	logger.WithField("pages", pages).Debug("vidsrc: attempt exhausted")
	return nil, nil
}

func candidatesFrom(e entry, found []Media) []Candidate {
	candidates := make([]Candidate, 0, len(found))
	for _, m := range found {
		candidates = append(candidates, Candidate{
			URL:        m.URL,
			Kind:       m.Kind,
			ServerHash: e.token,
			RelayHost:  e.relayHost,
			NestedURL:  mo.Some(e.url),
		})
	}
	return candidates
}

func (r *Resolver) childReferences(html string) []string {
	return collect(html, r.children)
}

// fetch returns the body of a 200 response with a non-empty body, and nothing otherwise.
func (r *Resolver) fetch(ctx context.Context, url string, extra http.Header, timeout time.Duration) mo.Option[string] {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.proxy.Wrap(url), nil)
	if err != nil {
		log.Debugf("vidsrc: request %s: %v", url, err)
		return mo.None[string]()
	}

	for k, v := range extra {
		req.Header[k] = v
	}
	r.headers.Apply(req)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Debugf("vidsrc: fetch %s: %v", url, err)
		return mo.None[string]()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debugf("vidsrc: fetch %s: status %d", url, resp.StatusCode)
		return mo.None[string]()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil || len(body) == 0 {
		return mo.None[string]()
	}

	return mo.Some(string(body))
}
