// Package stremio talks to Stremio addons: it builds stream paths, fetches addon JSON
// and parses the direct HTTP streams that debrid-backed addons return.
package stremio

import (
	"errors"
	"fmt"

	"github.com/cine-cli/cine/media"
	"github.com/samber/mo"
)

// ErrInvalidRequest is returned for targets that cannot be expressed as an addon path.
var ErrInvalidRequest = errors.New("invalid stream request")

// Target identifies a movie or an episode by IMDb id.
type Target struct {
	Kind    media.Kind
	IMDbID  string
	Season  mo.Option[int]
	Episode mo.Option[int]
}

// MovieTarget builds a movie target.
func MovieTarget(imdbID string) Target {
	return Target{Kind: media.Movie, IMDbID: imdbID}
}

// EpisodeTarget builds an episode target.
func EpisodeTarget(imdbID string, season, episode int) Target {
	return Target{Kind: media.TV, IMDbID: imdbID, Season: mo.Some(season), Episode: mo.Some(episode)}
}

// Path returns the addon stream path, "/stream/movie/tt1.json" or "/stream/series/tt1:1:2.json".
func (t Target) Path() (string, error) {
	if t.IMDbID == "" {
		return "", fmt.Errorf("%w: missing IMDb id", ErrInvalidRequest)
	}

	switch t.Kind {
	case media.Movie:
		return fmt.Sprintf("/stream/movie/%s.json", t.IMDbID), nil
	case media.TV:
		season, okS := t.Season.Get()
		episode, okE := t.Episode.Get()
		if !okS || !okE {
			return "", fmt.Errorf("%w: season and episode are required for tv", ErrInvalidRequest)
		}
		return fmt.Sprintf("/stream/series/%s:%d:%d.json", t.IMDbID, season, episode), nil
	default:
		return "", fmt.Errorf("%w: media type must be 'movie' or 'tv', got %q", ErrInvalidRequest, t.Kind)
	}
}
