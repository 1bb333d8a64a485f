// Package resolver maps free-text product names onto catalog entries.
// Names proposed by the generation step are paraphrase-prone ("жареная
// курица" for the catalog's "курица"), so resolution runs three tiers
// in strict priority order: exact match, containment in either
// direction, then a fuzzy fallback gated by a minimum similarity.
package resolver

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/platefit/nutrition-engine/internal/catalog"
)

// MatchKind reports which tier produced a resolution.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchContains MatchKind = "contains"
	MatchFuzzy    MatchKind = "fuzzy"
	MatchNone     MatchKind = "none"
)

// DefaultThreshold is the minimum normalized similarity a fuzzy
// candidate must reach to be accepted.
const DefaultThreshold = 0.6

// Resolution is the outcome of resolving one raw name. Key is empty
// when Match is MatchNone.
type Resolution struct {
	Key   string
	Match MatchKind
}

// Resolver resolves raw product names against an immutable catalog.
// It is pure and safe for concurrent use.
type Resolver struct {
	catalog   *catalog.Catalog
	threshold float64
}

// New creates a Resolver with the default fuzzy threshold.
func New(c *catalog.Catalog) *Resolver {
	return NewWithThreshold(c, DefaultThreshold)
}

// NewWithThreshold creates a Resolver with a custom fuzzy threshold.
// Non-positive thresholds fall back to the default.
func NewWithThreshold(c *catalog.Catalog, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{catalog: c, threshold: threshold}
}

// Resolve maps raw onto a catalog key. A MatchNone result is a valid
// outcome, not an error; callers must handle it explicitly.
func (r *Resolver) Resolve(raw string) Resolution {
	name := catalog.Normalize(raw)
	if name == "" || r.catalog.Len() == 0 {
		return Resolution{Match: MatchNone}
	}

	if _, ok := r.catalog.Lookup(name); ok {
		return Resolution{Key: name, Match: MatchExact}
	}

	if key, ok := r.resolveContains(name); ok {
		return Resolution{Key: key, Match: MatchContains}
	}

	if key, ok := r.resolveFuzzy(name); ok {
		return Resolution{Key: key, Match: MatchFuzzy}
	}

	return Resolution{Match: MatchNone}
}

// resolveContains finds a key that contains the name or is contained
// in it. Ties prefer the longer shared substring; keys are walked in
// sorted order so equal overlaps settle on the lexicographically
// smallest key.
func (r *Resolver) resolveContains(name string) (string, bool) {
	bestKey := ""
	bestOverlap := 0

	for _, key := range r.catalog.Keys() {
		overlap := 0
		switch {
		case strings.Contains(key, name):
			overlap = len([]rune(name))
		case strings.Contains(name, key):
			overlap = len([]rune(key))
		default:
			continue
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			bestKey = key
		}
	}

	return bestKey, bestKey != ""
}

// resolveFuzzy returns the key with the highest normalized similarity
// above the threshold. Score ties are broken by the longer common
// substring, then by sorted key order.
func (r *Resolver) resolveFuzzy(name string) (string, bool) {
	bestKey := ""
	bestScore := 0.0
	bestCommon := -1

	for _, key := range r.catalog.Keys() {
		score := similarity(name, key)
		if score < r.threshold || score < bestScore {
			continue
		}
		if score > bestScore {
			bestKey = key
			bestScore = score
			bestCommon = -1
			continue
		}
		// Equal score: compare common substring lengths lazily.
		if bestCommon < 0 {
			bestCommon = commonSubstringLen(name, bestKey)
		}
		if common := commonSubstringLen(name, key); common > bestCommon {
			bestKey = key
			bestCommon = common
		}
	}

	return bestKey, bestKey != ""
}

// similarity is a normalized Levenshtein score in [0,1]: 1.0 for
// identical strings, scaled by the longer rune length.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// commonSubstringLen returns the length in runes of the longest
// substring shared by a and b.
func commonSubstringLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	longest := 0
	for i := 1; i <= len(ra); i++ {
		curr := make([]int, len(rb)+1)
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > longest {
					longest = curr[j]
				}
			}
		}
		prev = curr
	}
	return longest
}
