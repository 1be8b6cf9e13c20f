package network

import (
	"strings"
)

// Proxy wraps outgoing URLs behind a prefix such as "https://host/path?destination=".
// Only hosts matching one of Domains are wrapped; an empty Domains list matches every host.
type Proxy struct {
	Prefix  string
	Domains []string
}

// Wrap returns the URL to actually request for rawURL.
func (p Proxy) Wrap(rawURL string) string {
	if p.Prefix == "" || !p.matches(HostOf(rawURL)) {
		return rawURL
	}
	return p.Prefix + Quote(rawURL, ":/?&=%")
}

func (p Proxy) matches(host string) bool {
	if len(p.Domains) == 0 {
		return true
	}
	for _, d := range p.Domains {
		if host == d || strings.HasSuffix(host, d) {
			return true
		}
	}
	return false
}

// HostOf returns the authority part of a URL without parsing it strictly.
func HostOf(rawURL string) string {
	rest := rawURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// Quote percent-encodes s, leaving unreserved characters and the ones in safe intact.
func Quote(s, safe string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(safe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
