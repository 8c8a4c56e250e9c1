package family

import (
	"context"
	"sort"
	"time"

	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
)

// Stat is one aggregated family: its headword, total occurrences and the
// per-word breakdown.
type Stat struct {
	Headword    string            `json:"headword"`
	Total       int               `json:"count"`
	Derivatives []store.WordCount `json:"derivatives"`
}

// StatsStore is the slice of the record store the aggregator reads.
type StatsStore interface {
	LabeledRecords(ctx context.Context) ([]store.Record, error)
	ListMappings(ctx context.Context) ([]store.Mapping, error)
	RecordsByFamily(ctx context.Context, label string) ([]store.Record, error)
	RecordsByWord(ctx context.Context, word string) ([]store.Record, error)
}

// ComputeStats folds labeled records and mapping overrides into sorted
// family statistics. A mapping for a record's word wins over the
// headword stored in its family label. Pure function of its inputs.
func ComputeStats(records []store.Record, mappings []store.Mapping) []Stat {
	override := make(map[string]string, len(mappings))
	for _, m := range mappings {
		override[m.Word] = m.Headword
	}

	type group struct {
		total int
		words map[string]int
	}
	groups := make(map[string]*group)

	for _, r := range records {
		headword, ok := override[r.Word]
		if !ok {
			headword = vocab.HeadwordOf(r.WordFamily)
		}
		if headword == "" {
			continue
		}
		g := groups[headword]
		if g == nil {
			g = &group{words: make(map[string]int)}
			groups[headword] = g
		}
		g.total++
		g.words[r.Word]++
	}

	stats := make([]Stat, 0, len(groups))
	for headword, g := range groups {
		derivs := make([]store.WordCount, 0, len(g.words))
		for w, c := range g.words {
			derivs = append(derivs, store.WordCount{Word: w, Count: c})
		}
		sort.Slice(derivs, func(i, j int) bool {
			if derivs[i].Count != derivs[j].Count {
				return derivs[i].Count > derivs[j].Count
			}
			return derivs[i].Word < derivs[j].Word
		})
		stats = append(stats, Stat{Headword: headword, Total: g.total, Derivatives: derivs})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Headword < stats[j].Headword
	})
	return stats
}

// Aggregator serves family statistics through a time-bounded cache and
// drill-down queries straight from the store.
type Aggregator struct {
	store StatsStore
	cache *Cache[[]Stat]
}

// DefaultTTL is how long a computed statistics view stays served.
const DefaultTTL = 5 * time.Minute

func NewAggregator(s StatsStore, ttl time.Duration) *Aggregator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Aggregator{store: s, cache: NewCache[[]Stat](ttl)}
}

// Stats returns the cached family statistics, recomputing on expiry.
func (a *Aggregator) Stats(ctx context.Context) ([]Stat, error) {
	return a.cache.GetOrCompute(func() ([]Stat, error) {
		records, err := a.store.LabeledRecords(ctx)
		if err != nil {
			return nil, err
		}
		mappings, err := a.store.ListMappings(ctx)
		if err != nil {
			return nil, err
		}
		return ComputeStats(records, mappings), nil
	})
}

// Invalidate drops the cached view; the next Stats call recomputes.
func (a *Aggregator) Invalidate() {
	a.cache.Invalidate()
}

// Family returns the records labeled with one family label.
func (a *Aggregator) Family(ctx context.Context, label string) ([]store.Record, error) {
	return a.store.RecordsByFamily(ctx, label)
}

// Word returns the records for one surface word.
func (a *Aggregator) Word(ctx context.Context, word string) ([]store.Record, error) {
	return a.store.RecordsByWord(ctx, word)
}
