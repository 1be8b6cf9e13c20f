// Package network provides the shared HTTP clients, browser-like default headers
// and proxy wrapping used by every remote source.
package network

import (
	"net/http"
	"time"
)

// Client is shared by catalog and index clients that do not need special transport settings.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Options select how a dedicated client is built.
type Options struct {
	Timeout        time.Duration
	TLSFingerprint bool
}

// NewClient builds a client with the given per-request timeout.
// With TLSFingerprint set, TLS handshakes mimic Chrome.
func NewClient(opts Options) *http.Client {
	var rt http.RoundTripper = newTransport()
	if opts.TLSFingerprint {
		rt = newFingerprintTransport(rt)
	}
	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: rt,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}

// Headers are the browser-like defaults sent with every request.
type Headers struct {
	UserAgent      string
	Accept         string
	AcceptLanguage string
	NoCache        bool
}

const (
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	AcceptJSON = "application/json, text/plain, */*"
)

// Apply sets the headers on req without overwriting values already present.
func (h Headers) Apply(req *http.Request) {
	set := func(k, v string) {
		if v != "" && req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	set("User-Agent", h.UserAgent)
	set("Accept", h.Accept)
	set("Accept-Language", h.AcceptLanguage)
	if h.NoCache {
		set("Cache-Control", "no-cache")
		set("Pragma", "no-cache")
	}
}
