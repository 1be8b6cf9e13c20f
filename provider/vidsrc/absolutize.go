package vidsrc

import "strings"

// Absolutize resolves ref against baseHost, assuming https.
func Absolutize(baseHost, ref string) string {
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "/"):
		return "https://" + baseHost + ref
	default:
		return "https://" + baseHost + "/" + ref
	}
}
