package inline

import (
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/cine-cli/cine/provider/torrentio"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Item is a catalog search result.
type Item struct {
	ID          int      `json:"id" jsonschema:"description=TMDB id."`
	MediaType   string   `json:"media_type" jsonschema:"enum=movie,enum=tv"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseYear *int     `json:"release_year"`
	VoteAverage *float64 `json:"vote_average"`
	PosterURL   string   `json:"poster_url,omitempty"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
}

// Candidate is a resolved embed stream.
type Candidate struct {
	URL        string  `json:"url" jsonschema:"description=Playable media URL."`
	Kind       string  `json:"kind" jsonschema:"enum=m3u8,enum=mp4,enum=other"`
	ServerHash *string `json:"server_hash" jsonschema:"description=Hidden server token of the embed page that led here."`
	RelayHost  *string `json:"rcp_host" jsonschema:"description=Relay host the crawl went through."`
	NestedURL  *string `json:"nested_url" jsonschema:"description=Page the URL was found on. Send it as Referer when playing."`
}

// Torrent is a torrent offered by Torrentio.
type Torrent struct {
	Name          string         `json:"name"`
	Title         string         `json:"title"`
	InfoHash      string         `json:"infoHash"`
	FileIdx       *int           `json:"fileIdx" jsonschema:"description=Index of the file to play inside the torrent."`
	BehaviorHints map[string]any `json:"behaviorHints"`
	Magnet        string         `json:"magnet"`
}

// Direct is a debrid HTTP link.
type Direct struct {
	Source   string  `json:"source" jsonschema:"description=Provider that returned the link."`
	URL      string  `json:"url"`
	Label    string  `json:"label"`
	Name     string  `json:"name,omitempty"`
	Title    string  `json:"title,omitempty"`
	Filename string  `json:"filename,omitempty"`
	Size     *uint64 `json:"size_bytes"`
}

func ptr[T any](o mo.Option[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// Items converts catalog results.
func Items(items []media.Item) []Item {
	return lo.Map(items, func(i media.Item, _ int) Item {
		return Item{
			ID:          i.ID,
			MediaType:   i.Kind.String(),
			Title:       i.Title,
			Overview:    i.Overview,
			ReleaseYear: ptr(i.ReleaseYear),
			VoteAverage: ptr(i.VoteAverage),
			PosterURL:   i.PosterURL(),
			BackdropURL: i.BackdropURL(),
		}
	})
}

// Candidates converts resolver output.
func Candidates(candidates []vidsrc.Candidate) []Candidate {
	return lo.Map(candidates, func(c vidsrc.Candidate, _ int) Candidate {
		return Candidate{
			URL:        c.URL,
			Kind:       c.Kind.String(),
			ServerHash: ptr(c.ServerHash),
			RelayHost:  ptr(c.RelayHost),
			NestedURL:  ptr(c.NestedURL),
		}
	})
}

// Torrents converts Torrentio streams, building their magnets.
func Torrents(streams []torrentio.Stream) []Torrent {
	return lo.Map(streams, func(s torrentio.Stream, _ int) Torrent {
		hints := s.BehaviorHints
		if hints == nil {
			hints = map[string]any{}
		}

		return Torrent{
			Name:          s.Name,
			Title:         s.Title,
			InfoHash:      s.InfoHash,
			FileIdx:       ptr(s.FileIdx),
			BehaviorHints: hints,
			Magnet:        s.Magnet(),
		}
	})
}

// Directs converts debrid links.
func Directs(streams []stremio.DirectStream) []Direct {
	return lo.Map(streams, func(s stremio.DirectStream, _ int) Direct {
		return Direct{
			Source:   s.Source,
			URL:      s.URL,
			Label:    s.Display(),
			Name:     s.Name,
			Title:    s.Title,
			Filename: s.Filename,
			Size:     ptr(s.Size),
		}
	})
}
