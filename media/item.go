package media

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

const imageBase = "https://image.tmdb.org/t/p/"

// Item is a catalog entry.
type Item struct {
	ID           int                 `json:"id"`
	Kind         Kind                `json:"media_type"`
	Title        string              `json:"title"`
	Overview     string              `json:"overview"`
	PosterPath   string              `json:"poster_path,omitempty"`
	BackdropPath string              `json:"backdrop_path,omitempty"`
	VoteAverage  mo.Option[float64]  `json:"vote_average"`
	ReleaseYear  mo.Option[int]      `json:"release_year"`
}

// PosterURL returns the w342 poster, or an empty string.
func (i *Item) PosterURL() string {
	return imageURL("w342", i.PosterPath)
}

// BackdropURL returns the w300 backdrop, or an empty string.
func (i *Item) BackdropURL() string {
	return imageURL("w300", i.BackdropPath)
}

// Label renders "Title (year) ★7.4 [id:603]".
func (i *Item) Label() string {
	var b strings.Builder
	b.WriteString(i.Title)
	if year, ok := i.ReleaseYear.Get(); ok {
		fmt.Fprintf(&b, " (%d)", year)
	}
	if vote, ok := i.VoteAverage.Get(); ok {
		fmt.Fprintf(&b, " ★%.1f", vote)
	}
	fmt.Fprintf(&b, " [id:%d]", i.ID)
	return b.String()
}

// Preview is the text shown next to the item in pickers.
func (i *Item) Preview() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", i.Title)
	fmt.Fprintf(&b, "Type: %s\n", i.Kind)
	if year, ok := i.ReleaseYear.Get(); ok {
		fmt.Fprintf(&b, "Year: %d\n", year)
	}
	if vote, ok := i.VoteAverage.Get(); ok {
		fmt.Fprintf(&b, "Rating: %.1f\n", vote)
	}
	if poster := i.PosterURL(); poster != "" {
		fmt.Fprintf(&b, "Poster: %s\n", poster)
	}
	if i.Overview != "" {
		fmt.Fprintf(&b, "\n%s", strings.TrimSpace(i.Overview))
	}
	return b.String()
}

// Season summarizes one season of a show.
type Season struct {
	Number       int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	Name         string `json:"name"`
}

// Label renders "S01  (10 eps) - Season 1".
func (s Season) Label() string {
	return fmt.Sprintf("S%02d  (%d eps) - %s", s.Number, s.EpisodeCount, s.Name)
}

// Episode is one episode of a season.
type Episode struct {
	Season   int    `json:"season_number"`
	Number   int    `json:"episode_number"`
	Name     string `json:"name"`
	AirDate  string `json:"air_date"`
	Overview string `json:"overview"`
}

// Code renders "S01E02".
func (e Episode) Code() string {
	return EpisodeCode(e.Season, e.Number)
}

// Label renders "S01E02 - Name".
func (e Episode) Label() string {
	return fmt.Sprintf("%s - %s", e.Code(), e.Name)
}

// Preview renders the episode details panel, overview truncated to 800 runes.
func (e Episode) Preview(show string) string {
	air := e.AirDate
	if air == "" {
		air = "-"
	}
	overview := []rune(strings.TrimSpace(e.Overview))
	if len(overview) > 800 {
		overview = overview[:800]
	}
	return fmt.Sprintf("Title: %s\nEpisode: %s\nAir: %s\n\nOverview:\n%s", show, e.Label(), air, string(overview))
}

// EpisodeCode renders "S01E02".
func EpisodeCode(season, episode int) string {
	return fmt.Sprintf("S%02dE%02d", season, episode)
}

func imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBase + size + path
}
