package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/cullarr/internal/arr"
)

// Filter drops library entries that must never be touched: blacklisted
// titles, blacklisted tags, and entries whose monitored state does not match
// the mode's interest.
type Filter struct {
	titles map[string]struct{}
	tagIDs map[int]struct{}

	// Monitored, when non-nil, keeps only entries with that monitored state.
	// Tag and title blacklists apply regardless.
	Monitored *bool
}

// NewFilter builds a filter from configured blacklists. Tag labels are
// resolved to ids once through the cache; labels unknown to the service
// cannot match anything and drop out here.
func NewFilter(ctx context.Context, titles, tagLabels []string, tags *arr.TagCache) (*Filter, error) {
	f := &Filter{
		titles: make(map[string]struct{}, len(titles)),
		tagIDs: make(map[int]struct{}),
	}
	for _, t := range titles {
		f.titles[strings.ToLower(t)] = struct{}{}
	}

	if len(tagLabels) > 0 && tags != nil {
		ids, err := tags.IDs(ctx, tagLabels)
		if err != nil {
			return nil, fmt.Errorf("resolve blacklist tags: %w", err)
		}
		for _, id := range ids {
			f.tagIDs[id] = struct{}{}
		}
	}
	return f, nil
}

// Movies returns the movies that pass the filter.
func (f *Filter) Movies(movies []arr.Movie) []arr.Movie {
	var kept []arr.Movie
	for _, m := range movies {
		if f.blacklisted(m.Title, m.Tags) {
			continue
		}
		if f.Monitored != nil && m.Monitored != *f.Monitored {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// Series returns the series that pass the filter. The monitored predicate is
// not applied here: series monitoring is per-season and per-episode, so the
// engine decides at that granularity.
func (f *Filter) Series(series []arr.Series) []arr.Series {
	var kept []arr.Series
	for _, s := range series {
		if f.blacklisted(s.Title, s.Tags) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func (f *Filter) blacklisted(title string, tags []int) bool {
	if _, ok := f.titles[strings.ToLower(title)]; ok {
		return true
	}
	for _, id := range tags {
		if _, ok := f.tagIDs[id]; ok {
			return true
		}
	}
	return false
}
