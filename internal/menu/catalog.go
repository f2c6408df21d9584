package menu

import (
	"log"
	"strings"
	"sync"

	"shackchat/internal/database"
	"shackchat/internal/models"
)

// MatchTier identifies which stage of the resolution cascade produced a match.
// Lower tiers are higher confidence and always win; the ordering is part of
// the catalog's contract.
type MatchTier int

const (
	TierNone MatchTier = iota
	TierExact
	TierSubstring
	TierTokenSet
	TierTokenOverlap
	TierKeyword
)

func (t MatchTier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	case TierTokenSet:
		return "token_set"
	case TierTokenOverlap:
		return "token_overlap"
	case TierKeyword:
		return "keyword"
	default:
		return "none"
	}
}

const (
	// overlapThreshold is the minimum word-overlap ratio for a tier-4 match.
	overlapThreshold = 0.5
	// keywordCutoff is the maximum normalized edit distance accepted when
	// picking the closest candidate inside a keyword bucket.
	keywordCutoff = 0.8
)

// keywordBuckets maps semantic buckets to the name fragments that identify
// their items. Evaluated in order so bucket resolution stays deterministic.
var keywordBuckets = []struct {
	name     string
	keywords []string
}{
	{"burger", []string{"burger", "hamburger", "cheeseburger", "shackburger", "smokeshack"}},
	{"shake", []string{"shake", "milkshake"}},
	{"fries", []string{"fries"}},
	{"chicken", []string{"chicken"}},
	{"drink", []string{"tea", "lemonade", "soda", "water", "topo"}},
}

// Catalog holds the menu in memory and resolves free-text item names.
// Items are loaded once from the store and cached for the process lifetime;
// Invalidate forces a reload on the next query.
type Catalog struct {
	store    Store
	fallback []models.MenuItem

	mu    sync.RWMutex
	cache []models.MenuItem
}

// NewCatalog creates a catalog over the given store, falling back to the
// built-in reference menu when the store is unreachable.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store, fallback: database.ReferenceMenu()}
}

// AllItems returns every menu item, cached after the first load
func (c *Catalog) AllItems() []models.MenuItem {
	c.mu.RLock()
	if c.cache != nil {
		items := c.cache
		c.mu.RUnlock()
		return items
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache != nil {
		return c.cache
	}

	items, err := c.store.AllItems()
	if err != nil {
		log.Printf("menu store unavailable, using fallback menu: %v", err)
		items = nil
	}

	kept := make([]models.MenuItem, 0, len(items))
	for i := range items {
		if err := models.ValidateMenuItem(&items[i]); err != nil {
			log.Printf("skipping invalid menu item: %v", err)
			continue
		}
		kept = append(kept, items[i])
	}
	if len(kept) == 0 {
		kept = c.fallback
	}
	c.cache = kept
	return c.cache
}

// ItemsByCategory returns the cached items for a single category
func (c *Catalog) ItemsByCategory(category string) []models.MenuItem {
	var items []models.MenuItem
	for _, item := range c.AllItems() {
		if strings.EqualFold(item.Category, category) {
			items = append(items, item)
		}
	}
	return items
}

// Invalidate clears the cache so the next query reloads from the store
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.cache = nil
	c.mu.Unlock()
}

// Resolve maps a free-text item name to a menu item. The cascade runs
// precision-first: exact match, substring containment either direction,
// token-set subsumption, partial token overlap, then the keyword-bucket
// fallback. Returns the matched item, the tier that matched, and whether a
// match was found at all.
func (c *Catalog) Resolve(name string) (models.MenuItem, MatchTier, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return models.MenuItem{}, TierNone, false
	}

	items := c.AllItems()

	// Tier 1: exact case-insensitive match.
	for _, item := range items {
		if strings.ToLower(item.Name) == query {
			return item, TierExact, true
		}
	}

	// Tier 2: substring containment in either direction, first match wins.
	for _, item := range items {
		lower := strings.ToLower(item.Name)
		if strings.Contains(lower, query) || strings.Contains(query, lower) {
			return item, TierSubstring, true
		}
	}

	// Tier 3: one word set subsumes the other.
	queryWords := tokenSet(query)
	for _, item := range items {
		itemWords := tokenSet(strings.ToLower(item.Name))
		if isSubset(queryWords, itemWords) || isSubset(itemWords, queryWords) {
			return item, TierTokenSet, true
		}
	}

	// Tier 4: partial token overlap, best score above the threshold.
	var best models.MenuItem
	bestScore := overlapThreshold
	found := false
	for _, item := range items {
		itemWords := tokenSet(strings.ToLower(item.Name))
		common := overlap(queryWords, itemWords)
		if common == 0 {
			continue
		}
		denom := len(queryWords)
		if len(itemWords) > denom {
			denom = len(itemWords)
		}
		score := float64(common) / float64(denom)
		if score > bestScore {
			best = item
			bestScore = score
			found = true
		}
	}
	if found {
		return best, TierTokenOverlap, true
	}

	// Tier 5: keyword-bucket fallback.
	if item, ok := c.resolveByKeyword(query, items); ok {
		return item, TierKeyword, true
	}

	return models.MenuItem{}, TierNone, false
}

// resolveByKeyword narrows the candidates to items in the first bucket that
// covers the query, then picks the closest by normalized edit distance. If
// nothing clears the cutoff, the first candidate wins. A bucket only applies
// when every meaningful query token belongs to its vocabulary, so a made-up
// item like "Moon Burger" stays unresolved instead of snapping to the
// nearest burger.
func (c *Catalog) resolveByKeyword(query string, items []models.MenuItem) (models.MenuItem, bool) {
	for _, bucket := range keywordBuckets {
		if !bucketCovers(query, bucket.keywords) {
			continue
		}

		var candidates []models.MenuItem
		for _, item := range items {
			if containsAny(strings.ToLower(item.Name), bucket.keywords) {
				candidates = append(candidates, item)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDist := 1.0
		for _, candidate := range candidates {
			d := normalizedDistance(query, strings.ToLower(candidate.Name))
			if d < bestDist {
				best = candidate
				bestDist = d
			}
		}
		if bestDist <= keywordCutoff {
			return best, true
		}
		return candidates[0], true
	}
	return models.MenuItem{}, false
}

func tokenSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		words[w] = struct{}{}
	}
	return words
}

func isSubset(a, b map[string]struct{}) bool {
	if len(a) == 0 {
		return false
	}
	for w := range a {
		if _, ok := b[w]; !ok {
			return false
		}
	}
	return true
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// stopwords are ignored when deciding whether a bucket covers a query
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "with": {}, "and": {}, "some": {}, "please": {},
}

// bucketCovers reports whether every meaningful token of the query belongs
// to the bucket vocabulary, with at least one token matching.
func bucketCovers(query string, keywords []string) bool {
	matched := false
	for _, token := range strings.Fields(query) {
		if _, ok := stopwords[token]; ok {
			continue
		}
		if !tokenInVocabulary(token, keywords) {
			return false
		}
		matched = true
	}
	return matched
}

func tokenInVocabulary(token string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(token, k) || strings.Contains(k, token) {
			return true
		}
	}
	return false
}

// normalizedDistance returns the Levenshtein distance between a and b divided
// by the length of the longer string, so 0 is identical and 1 is disjoint.
func normalizedDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein(ra, rb)) / float64(longest)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
