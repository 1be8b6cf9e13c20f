package vidsrc

import (
	"slices"

	"github.com/samber/mo"
)

// Rank orders candidates m3u8 first, then mp4, then other, shorter URLs first
// within a kind. The input is left untouched and equal keys keep their order.
func Rank(candidates []Candidate) []Candidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		if a.Kind != b.Kind {
			return preference(a.Kind) - preference(b.Kind)
		}
		return len(a.URL) - len(b.URL)
	})
	return ranked
}

// preference is the sort key of k, lowest first.
func preference(k Kind) int {
	switch k {
	case KindM3U8:
		return 0
	case KindMP4:
		return 1
	default:
		return 2
	}
}

// Best returns the top ranked candidate.
func Best(candidates []Candidate) mo.Option[Candidate] {
	if len(candidates) == 0 {
		return mo.None[Candidate]()
	}
	return mo.Some(Rank(candidates)[0])
}
