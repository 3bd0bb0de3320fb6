// Package signals builds the deduplicated signal table from platform
// symbol lists.
package signals

import (
	"sort"
	"strings"

	"github.com/charliek/sigtab/internal/constants"
	"github.com/charliek/sigtab/internal/domain"
)

// ShortName strips a leading "SIG" from symbol. Symbols without the
// prefix are returned unchanged.
func ShortName(symbol string) string {
	return strings.TrimPrefix(symbol, constants.SymbolPrefix)
}

// Registry maps short names to the first symbol that produced them.
// Insertion order is preserved; later symbols with a known short name
// never replace the stored one.
type Registry struct {
	index   map[string]int
	entries []domain.Entry
	skipped int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Build creates a registry from sources, in order
func Build(sources ...domain.Source) *Registry {
	r := NewRegistry()
	for _, src := range sources {
		for _, sym := range src.Symbols {
			r.Add(sym, src.Name)
		}
	}
	return r
}

// Add inserts symbol under its short name if that name is absent.
// It reports whether the symbol was stored. The origin is recorded on the
// entry either way.
func (r *Registry) Add(symbol, origin string) bool {
	short := ShortName(symbol)
	if i, ok := r.index[short]; ok {
		if origin != "" && !r.entries[i].HasOrigin(origin) {
			r.entries[i].Origins = append(r.entries[i].Origins, origin)
		}
		r.skipped++
		return false
	}

	e := domain.Entry{Short: short, Symbol: symbol}
	if origin != "" {
		e.Origins = []string{origin}
	}
	r.index[short] = len(r.entries)
	r.entries = append(r.entries, e)
	return true
}

// Lookup returns the entry stored under short
func (r *Registry) Lookup(short string) (domain.Entry, bool) {
	i, ok := r.index[short]
	if !ok {
		return domain.Entry{}, false
	}
	return cloneEntry(r.entries[i]), true
}

// Len returns the number of unique short names
func (r *Registry) Len() int {
	return len(r.entries)
}

// Skipped returns how many symbols were discarded as duplicates
func (r *Registry) Skipped() int {
	return r.skipped
}

// Entries returns the entries in insertion order
func (r *Registry) Entries() []domain.Entry {
	out := make([]domain.Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Keys returns the short names in byte-wise ascending order
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.Short)
	}
	sort.Strings(keys)
	return keys
}

// Sorted returns the entries ordered by short name, byte-wise ascending
func (r *Registry) Sorted() []domain.Entry {
	out := r.Entries()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Short < out[j].Short
	})
	return out
}

func cloneEntry(e domain.Entry) domain.Entry {
	e.Origins = append([]string(nil), e.Origins...)
	return e
}
