// Package catalog holds the immutable nutrition catalog: a lookup
// table from normalized product names to per-100g macro profiles.
// The catalog is built once at startup and read concurrently without
// locking; it never changes during request handling.
package catalog

import (
	"sort"
	"strings"

	"github.com/platefit/nutrition-engine/internal/model"
)

// Entry is one catalog record.
type Entry struct {
	Name     string
	Macros   model.Macros
	Category string
}

// Catalog is a read-only name-to-entry table. The zero value is an
// empty catalog for which every lookup misses.
type Catalog struct {
	entries map[string]Entry
	keys    []string
}

// New builds a Catalog from entries. Names are normalized; on
// duplicate normalized names the last entry wins. Entries with empty
// normalized names are dropped.
func New(entries []Entry) *Catalog {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		name := Normalize(e.Name)
		if name == "" {
			continue
		}
		e.Name = name
		m[name] = e
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Catalog{entries: m, keys: keys}
}

// Normalize lowercases and trims a product name. Lookups apply the
// same normalization as catalog construction so keys always compare
// in one canonical form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the entry for name after normalization. No fuzzy
// logic happens here; approximate matching is the resolver's job.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil || c.entries == nil {
		return Entry{}, false
	}
	e, ok := c.entries[Normalize(name)]
	return e, ok
}

// Keys returns the normalized catalog keys in sorted order. The slice
// is shared and must not be modified.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	return c.keys
}

// Entries returns all catalog entries in sorted key order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	entries := make([]Entry, 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, c.entries[k])
	}
	return entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
