package torrentio

import (
	"net/url"
	"strings"

	"github.com/cine-cli/cine/network"
)

// Magnet builds a magnet link. Sources of the form "tracker:URL" become tr parameters.
func Magnet(infoHash, displayName string, sources []string) string {
	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(infoHash)

	if displayName != "" {
		b.WriteString("&dn=")
		b.WriteString(url.QueryEscape(displayName))
	}

	for _, src := range sources {
		tracker, ok := strings.CutPrefix(src, "tracker:")
		if !ok {
			continue
		}
		b.WriteString("&tr=")
		b.WriteString(network.Quote(tracker, ":/?&=%"))
	}

	return b.String()
}
