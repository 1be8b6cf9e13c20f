// Package media holds the catalog vocabulary shared by resolvers, clients and the UI.
package media

import (
	"fmt"
	"strings"
)

// Kind distinguishes movies from TV shows.
type Kind string

const (
	Movie Kind = "movie"
	TV    Kind = "tv"
)

// ParseKind accepts "movie" or "tv" (case-insensitive, "series" as an alias of tv).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return Movie, nil
	case "tv", "series":
		return TV, nil
	default:
		return "", fmt.Errorf("media type must be 'movie' or 'tv', got %q", s)
	}
}

func (k Kind) String() string {
	return string(k)
}

// Kinds lists every kind, for flag completion.
func Kinds() []string {
	return []string{string(Movie), string(TV)}
}
