package vidsrc

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Extractor pulls URL-like references out of raw page text.
// It must be pure and return nothing, not an error, when its pattern is absent.
type Extractor func(html string) []string

// Submatch builds an Extractor returning the first capture group of every match of re.
func Submatch(re *regexp.Regexp) Extractor {
	return func(html string) []string {
		var out []string
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			if len(m) > 1 && m[1] != "" {
				out = append(out, m[1])
			}
		}
		return out
	}
}

var (
	reHashDouble = regexp.MustCompile(`data-hash="([^"]+)"`)
	reHashSingle = regexp.MustCompile(`data-hash='([^']+)'`)
	reDataID     = regexp.MustCompile(`data-id="([^"]{16,})"`)

	reRelayHost = regexp.MustCompile(`(?i)https?://([a-z0-9.-]+)/rcp/`)

	reSrcSingleLoose = regexp.MustCompile(`src\s*:\s*'([^']+)'`)
	reSrcSingle      = regexp.MustCompile(`\bsrc\s*:\s*'([^']+)'`)
	reSrcDouble      = regexp.MustCompile(`\bsrc\s*:\s*"([^"]+)"`)
	reIframe         = regexp.MustCompile(`(?i)<iframe[^>]+src=["']([^"']+)["']`)
	reFileField      = regexp.MustCompile(`(?i)\bfile\s*:\s*"(https?://[^"]+)"`)
	reSourceTag      = regexp.MustCompile(`(?i)<source[^>]+src=["']([^"']+)["']`)
	reDataSrc        = regexp.MustCompile(`(?i)data-src=["']([^"']+)["']`)

	reM3U8     = regexp.MustCompile(`(?i)https?://[^"'\s]+\.m3u8[^"'\s]*`)
	reMP4      = regexp.MustCompile(`(?i)https?://[^"'\s]+\.mp4[^"'\s]*`)
	reJSONFile = regexp.MustCompile(`(?i)"file"\s*:\s*"(https?://[^"]+)"`)
)

// Token patterns, in the order their matches are reported.
var tokenExtractors = []Extractor{
	Submatch(reHashDouble),
	Submatch(reHashSingle),
	Submatch(reDataID),
}

// Nested reference patterns, by priority.
var nestedExtractors = []*regexp.Regexp{
	reSrcSingleLoose,
	reSrcDouble,
	reIframe,
}

// ChildExtractors are the built-in child reference patterns.
// Resolvers may append more with WithExtractors.
var ChildExtractors = []Extractor{
	Submatch(reIframe),
	Submatch(reSrcSingle),
	Submatch(reSrcDouble),
	Submatch(reFileField),
	Submatch(reSourceTag),
	Submatch(reDataSrc),
}

// HiddenTokens returns the relay tokens hidden in data-hash and long data-id attributes.
func HiddenTokens(html string) []string {
	return collect(html, tokenExtractors)
}

// RelayHosts returns the hosts of /rcp/ links in html, then fallbackHost and the
// well-known relay, without duplicates.
func RelayHosts(html, fallbackHost, wellKnown string) []string {
	hosts := Submatch(reRelayHost)(html)
	hosts = append(hosts, fallbackHost, wellKnown)
	return lo.Uniq(lo.Compact(hosts))
}

// NestedReference returns the first src field or iframe source in html.
func NestedReference(html string) mo.Option[string] {
	for _, re := range nestedExtractors {
		if m := re.FindStringSubmatch(html); len(m) > 1 && m[1] != "" {
			return mo.Some(m[1])
		}
	}
	return mo.None[string]()
}

// ChildReferences returns every frame, source and script reference found by the
// built-in patterns, without duplicates.
func ChildReferences(html string) []string {
	return collect(html, ChildExtractors)
}

// Media is a direct media URL with its classification.
type Media struct {
	URL  string
	Kind Kind
}

// DirectMedia returns the bare .m3u8 and .mp4 URLs and "file" fields in html.
func DirectMedia(html string) []Media {
	var found []Media
	for _, u := range reM3U8.FindAllString(html, -1) {
		found = append(found, Media{URL: u, Kind: KindM3U8})
	}
	for _, u := range reMP4.FindAllString(html, -1) {
		found = append(found, Media{URL: u, Kind: KindMP4})
	}
	for _, u := range Submatch(reJSONFile)(html) {
		found = append(found, Media{URL: u, Kind: classify(u)})
	}
	return lo.Uniq(found)
}

func classify(u string) Kind {
	switch {
	case strings.Contains(u, ".m3u8"):
		return KindM3U8
	case strings.Contains(u, ".mp4"):
		return KindMP4
	default:
		return KindOther
	}
}

func collect(html string, extractors []Extractor) []string {
	var out []string
	for _, extract := range extractors {
		out = append(out, extract(html)...)
	}
	return lo.Uniq(lo.Compact(out))
}
