package history

import (
	"fmt"

	"github.com/cine-cli/cine/media"
	"github.com/samber/mo"
)

// Actions recorded in the log.
const (
	ActionPlay     = "play"
	ActionDownload = "download"
)

// EpisodeRef locates an episode within a show.
type EpisodeRef struct {
	Season  int `json:"season"`
	Episode int `json:"episode"`
}

func (e EpisodeRef) String() string {
	return media.EpisodeCode(e.Season, e.Episode)
}

// Entry is one line of the history log.
type Entry struct {
	Action      string                `json:"action"`
	Method      string                `json:"method"`
	ID          int                   `json:"id"`
	Kind        media.Kind            `json:"media_type"`
	Title       string                `json:"title"`
	Episode     mo.Option[EpisodeRef] `json:"episode"`
	PosterURL   string                `json:"poster_url,omitempty"`
	BackdropURL string                `json:"backdrop_url,omitempty"`
	ReleaseYear mo.Option[int]        `json:"release_year"`
	VoteAverage mo.Option[float64]    `json:"vote_average"`
	OutDir      string                `json:"out_dir,omitempty"`
	Source      string                `json:"source,omitempty"`
	Timestamp   string                `json:"ts"`
}

// NewEntry builds an entry for item, carrying its artwork and rating.
func NewEntry(action, method string, item *media.Item) Entry {
	return Entry{
		Action:      action,
		Method:      method,
		ID:          item.ID,
		Kind:        item.Kind,
		Title:       item.Title,
		PosterURL:   item.PosterURL(),
		BackdropURL: item.BackdropURL(),
		ReleaseYear: item.ReleaseYear,
		VoteAverage: item.VoteAverage,
	}
}

// WithEpisode returns a copy of e pointing at an episode.
func (e Entry) WithEpisode(season, episode int) Entry {
	e.Episode = mo.Some(EpisodeRef{Season: season, Episode: episode})
	return e
}

func (e Entry) key() string {
	ref := e.Episode.OrEmpty()
	return fmt.Sprintf("%s:%d:%d:%d", e.Kind, e.ID, ref.Season, ref.Episode)
}

// Item rebuilds the catalog item an entry refers to. Artwork paths are not kept.
func (e Entry) Item() media.Item {
	return media.Item{
		ID:          e.ID,
		Kind:        e.Kind,
		Title:       e.Title,
		ReleaseYear: e.ReleaseYear,
		VoteAverage: e.VoteAverage,
	}
}
