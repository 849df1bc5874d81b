// Package query remembers looked-up variable names and turns them into suggestions.
package query

import (
	"sort"
	"strings"
	"sync"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/where"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	suggestionMu    sync.Mutex
	suggestionCache = make(map[string][]*queryRecord)
)

// Remember records a looked-up name or increments its rank.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	suggestionMu.Lock()
	suggestionCache = make(map[string][]*queryRecord)
	suggestionMu.Unlock()

	return cacher.Set(cached)
}

// Suggest returns the highest ranked remembered name matching a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered names fuzzily matching a partial input, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	suggestionMu.Lock()
	defer suggestionMu.Unlock()

	records, ok := suggestionCache[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.MatchFold(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// DidYouMean picks the candidate closest to an unknown name: the best fuzzy match when the
// name is a subsequence of some candidate, otherwise the one with the smallest edit distance
// if that distance is at most half the name's length.
func DidYouMean(name string, candidates []string) mo.Option[string] {
	name = sanitize(name)
	if name == "" || len(candidates) == 0 {
		return mo.None[string]()
	}

	if ranks := fuzzy.RankFindFold(name, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(ranks[0].Target)
	}

	closest := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, closest) > len(name)/2 {
		return mo.None[string]()
	}
	return mo.Some(closest)
}

func sanitize(q string) string {
	return strings.TrimSpace(q)
}
