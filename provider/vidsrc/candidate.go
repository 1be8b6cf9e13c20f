// Package vidsrc resolves directly playable stream URLs for movies and episodes
// by crawling VidSrc embed pages and the relay pages they point to.
package vidsrc

import (
	"errors"
	"fmt"

	"github.com/cine-cli/cine/media"
	"github.com/samber/mo"
)

// ErrInvalidRequest is returned when a request cannot target a single stream,
// such as a TV resolution without both season and episode.
var ErrInvalidRequest = errors.New("invalid vidsrc request")

// Kind classifies a candidate by media container. The zero value is KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindM3U8
	KindMP4
)

func (k Kind) String() string {
	switch k {
	case KindM3U8:
		return "m3u8"
	case KindMP4:
		return "mp4"
	default:
		return "other"
	}
}

// MarshalText renders the kind as m3u8, mp4 or other.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText maps unknown tags to KindOther.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = kindOf(string(text))
	return nil
}

func kindOf(tag string) Kind {
	switch tag {
	case "m3u8":
		return KindM3U8
	case "mp4":
		return KindMP4
	default:
		return KindOther
	}
}

// Candidate is a discovered, directly fetchable media URL.
type Candidate struct {
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
	// ServerHash is the hidden token of the relay chain that produced the candidate.
	ServerHash mo.Option[string] `json:"server_hash"`
	RelayHost  mo.Option[string] `json:"rcp_host"`
	// NestedURL is the page the candidate was found on. Players send it as Referer.
	NestedURL mo.Option[string] `json:"nested_url"`
}

func (c Candidate) String() string {
	return fmt.Sprintf("[%s] %s", c.Kind, c.URL)
}

// Referrer returns the page the candidate was found on, or an empty string.
func (c Candidate) Referrer() string {
	return c.NestedURL.OrEmpty()
}

// Request identifies the media to resolve.
type Request struct {
	Kind    media.Kind
	ID      int
	Season  mo.Option[int]
	Episode mo.Option[int]
}

// Movie builds a movie request.
func Movie(id int) Request {
	return Request{Kind: media.Movie, ID: id}
}

// Episode builds a TV episode request.
func Episode(id, season, episode int) Request {
	return Request{
		Kind:    media.TV,
		ID:      id,
		Season:  mo.Some(season),
		Episode: mo.Some(episode),
	}
}

// Validate reports ErrInvalidRequest for requests that cannot be resolved.
func (r Request) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: catalog id must be positive, got %d", ErrInvalidRequest, r.ID)
	}

	switch r.Kind {
	case media.Movie:
		return nil
	case media.TV:
		if !r.hasEpisode() {
			return fmt.Errorf("%w: tv requires season and episode", ErrInvalidRequest)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidRequest, r.Kind)
	}
}

func (r Request) hasEpisode() bool {
	season, okS := r.Season.Get()
	episode, okE := r.Episode.Get()
	return okS && okE && season > 0 && episode > 0
}
