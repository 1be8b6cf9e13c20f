// Package query remembers catalog search terms and offers them back as suggestions.
package query

import (
	"strings"
	"sync"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Weights used when remembering a term.
const (
	// Searched marks a term that was typed.
	Searched = 1
	// Picked marks a term whose results led to a selection.
	Picked = 2
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu    sync.Mutex
	store = gache.New[map[string]*record](
		&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
	memo = make(map[string][]string)
)

func load() map[string]*record {
	cached, expired, err := store.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records q, or raises its rank by weight when already known.
func Remember(q string, weight int) error {
	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	clear(memo)
	return store.Set(records)
}

// Forget drops q from the stored terms.
func Forget(q string) error {
	q = normalize(q)

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if _, ok := records[q]; !ok {
		return nil
	}
	delete(records, q)

	clear(memo)
	return store.Set(records)
}

// Suggest returns the best match for a partial term.
func Suggest(q string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(q)))
}

// SuggestMany returns stored terms fuzzily matching q, highest rank first.
// Nothing is returned when suggestions are disabled.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = normalize(q)

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := memo[q]; ok {
		return prev
	}

	matches := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	suggestions := lo.Map(matches, func(r *record, _ int) string {
		return r.Query
	})
	memo[q] = suggestions
	return suggestions
}

// normalize lowercases q and collapses its whitespace.
func normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
