package vidsrc

import (
	"fmt"

	"github.com/cine-cli/cine/media"
	"github.com/samber/lo"
)

// EmbedURLs lists the embed pages to try for req, host-major and without duplicates.
// TV requests lacking an episode get the show-level pages only.
func EmbedURLs(domains []string, req Request) []string {
	var urls []string
	for _, domain := range domains {
		base := "https://" + domain
		id := req.ID

		switch {
		case req.Kind == media.Movie:
			urls = append(urls,
				fmt.Sprintf("%s/embed/movie/%d", base, id),
				fmt.Sprintf("%s/embed/movie?tmdb=%d", base, id),
				fmt.Sprintf("%s/embed/?tmdb=%d", base, id),
			)
		case req.hasEpisode():
			s, e := req.Season.MustGet(), req.Episode.MustGet()
			urls = append(urls,
				fmt.Sprintf("%s/embed/tv/%d/%d-%d", base, id, s, e),
				fmt.Sprintf("%s/embed/tv?tmdb=%d&season=%d&episode=%d", base, id, s, e),
				fmt.Sprintf("%s/embed/tv?tmdb=%d&s=%d&e=%d", base, id, s, e),
			)
		default:
			urls = append(urls,
				fmt.Sprintf("%s/embed/tv/%d", base, id),
				fmt.Sprintf("%s/embed/tv?tmdb=%d", base, id),
			)
		}
	}

	return lo.Uniq(urls)
}
