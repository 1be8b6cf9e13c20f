package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cine-cli/cine/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type result struct {
	ID            int      `json:"id"`
	MediaType     string   `json:"media_type"`
	Title         string   `json:"title"`
	Name          string   `json:"name"`
	OriginalTitle string   `json:"original_title"`
	OriginalName  string   `json:"original_name"`
	Overview      string   `json:"overview"`
	PosterPath    string   `json:"poster_path"`
	BackdropPath  string   `json:"backdrop_path"`
	VoteAverage   *float64 `json:"vote_average"`
	ReleaseDate   string   `json:"release_date"`
	FirstAirDate  string   `json:"first_air_date"`
}

type resultPage struct {
	Page    int      `json:"page"`
	Results []result `json:"results"`
}

func (r result) item(kind media.Kind) media.Item {
	title := lo.CoalesceOrEmpty(r.Title, r.Name, r.OriginalTitle, r.OriginalName)
	if title == "" {
		title = "Unknown"
	}

	item := media.Item{
		ID:           r.ID,
		Kind:         kind,
		Title:        title,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseYear:  yearOf(lo.CoalesceOrEmpty(r.ReleaseDate, r.FirstAirDate)),
	}
	if r.VoteAverage != nil {
		item.VoteAverage = mo.Some(*r.VoteAverage)
	}
	return item
}

func yearOf(date string) mo.Option[int] {
	head, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(year)
}

// Search finds movies and shows matching query. People and other result types are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]media.Item, error) {
	var page resultPage
	params := url.Values{"query": {query}, "include_adult": {"false"}}
	if err := c.get(ctx, "/search/multi", params, &page); err != nil {
		return nil, err
	}

	return lo.FilterMap(page.Results, func(r result, _ int) (media.Item, bool) {
		kind := media.Kind(r.MediaType)
		if kind != media.Movie && kind != media.TV {
			return media.Item{}, false
		}
		return r.item(kind), true
	}), nil
}

// Popular lists the popular titles of kind on the given page (1-based).
func (c *Client) Popular(ctx context.Context, kind media.Kind, page int) ([]media.Item, error) {
	if page < 1 {
		page = 1
	}

	var results resultPage
	params := url.Values{"page": {strconv.Itoa(page)}}
	if err := c.get(ctx, fmt.Sprintf("/%s/popular", kind), params, &results); err != nil {
		return nil, err
	}

	return lo.Map(results.Results, func(r result, _ int) media.Item {
		return r.item(kind)
	}), nil
}

// Show holds the details of a TV show.
type Show struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Seasons []media.Season `json:"seasons"`
}

// Playable returns the seasons that have episodes, skipping specials (season 0).
func (s *Show) Playable() []media.Season {
	return lo.Filter(s.Seasons, func(season media.Season, _ int) bool {
		return season.Number > 0 && season.EpisodeCount > 0
	})
}

// Details fetches a TV show with its seasons.
func (c *Client) Details(ctx context.Context, id int) (*Show, error) {
	var show Show
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// Season fetches the episodes of season n.
func (c *Client) Season(ctx context.Context, id, n int) ([]media.Episode, error) {
	var season struct {
		Episodes []media.Episode `json:"episodes"`
	}
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", id, n), nil, &season); err != nil {
		return nil, err
	}

	for i := range season.Episodes {
		if season.Episodes[i].Season == 0 {
			season.Episodes[i].Season = n
		}
	}
	return season.Episodes, nil
}

// ExternalIDs fetches the IMDb id of a movie or show. It is empty when TMDB has none.
func (c *Client) ExternalIDs(ctx context.Context, kind media.Kind, id int) (string, error) {
	var ids struct {
		IMDbID *string `json:"imdb_id"`
	}
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/external_ids", kind, id), nil, &ids); err != nil {
		return "", err
	}
	if ids.IMDbID == nil {
		return "", nil
	}
	return *ids.IMDbID, nil
}
