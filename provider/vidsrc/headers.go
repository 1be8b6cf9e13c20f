package vidsrc

import (
	"net/http"

	"github.com/cine-cli/cine/network"
)

// hopHeaders returns the per-hop headers for e.
// Origin prefers the carried relay host, then the referrer host, then the page host.
func hopHeaders(e entry) http.Header {
	h := http.Header{}
	if ref, ok := e.referrer.Get(); ok {
		h.Set("Referer", ref)
	}
	if origin := originFor(e); origin != "" {
		h.Set("Origin", "https://"+origin)
	}
	return h
}

func originFor(e entry) string {
	if host, ok := e.relayHost.Get(); ok && host != "" {
		return host
	}
	if ref, ok := e.referrer.Get(); ok {
		if host := network.HostOf(ref); host != "" {
			return host
		}
	}
	return network.HostOf(e.url)
}

func sessionHeaders(config Config) network.Headers {
	return network.Headers{
		UserAgent:      config.UserAgent,
		Accept:         network.AcceptHTML,
		AcceptLanguage: config.AcceptLanguage,
		NoCache:        true,
	}
}
