package chat

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"shackchat/internal/llm"
	"shackchat/internal/menu"
	"shackchat/internal/models"
)

// ResolvedItem pairs a resolved menu item with the quantity the user asked for
type ResolvedItem struct {
	Item     models.MenuItem
	Quantity int
}

// Extractor produces (item, quantity) pairs from free text. The text-pattern
// stage runs first for latency and determinism; the LLM stage is the fallback
// when the patterns find nothing. Extraction never fails: zero matched items
// is a valid outcome, and no cart state is touched here.
type Extractor struct {
	catalog *menu.Catalog
}

// NewExtractor creates an extractor over the given catalog
func NewExtractor(catalog *menu.Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// orderPrefixes are the ordering-intent phrases stripped before pattern
// matching, checked in order against the start of the utterance.
var orderPrefixes = []string{
	"i would like to get",
	"i would like",
	"i'd like to get",
	"i'd like",
	"i'll have",
	"i will have",
	"can i get",
	"could i get",
	"can i have",
	"could i have",
	"give me",
	"get me",
	"let me get",
	"i want",
	"i need",
	"add",
	"order",
	"please",
}

// standalone integer immediately before a name match sets its quantity
var precedingInt = regexp.MustCompile(`(?:^|\s)(\d+)$`)

func stripOrderPrefixes(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	for stripped := true; stripped; {
		stripped = false
		for _, prefix := range orderPrefixes {
			if strings.HasPrefix(lower, prefix+" ") {
				lower = strings.TrimSpace(lower[len(prefix)+1:])
				stripped = true
			}
		}
	}
	return lower
}

// namePattern builds a case-insensitive alternation over all menu item
// names, longest first so a longer name is never shadowed by one of its
// substrings.
func (e *Extractor) namePattern() *regexp.Regexp {
	items := e.catalog.AllItems()
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Name != "" {
			names = append(names, regexp.QuoteMeta(item.Name))
		}
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return regexp.MustCompile(`(?i)(` + strings.Join(names, "|") + `)`)
}

// Extract returns the resolved order items found in the utterance plus the
// names that could not be resolved against the menu. The LLM stage only runs
// when the text stage yields nothing.
func (e *Extractor) Extract(ctx context.Context, provider llm.Provider, utterance string) ([]ResolvedItem, []string) {
	if items := e.extractFromText(utterance); len(items) > 0 {
		return items, nil
	}
	return e.extractWithLLM(ctx, provider, utterance)
}

// extractFromText scans the utterance for known menu names and their
// preceding quantities
func (e *Extractor) extractFromText(utterance string) []ResolvedItem {
	text := stripOrderPrefixes(utterance)
	if text == "" {
		return nil
	}

	var items []ResolvedItem
	for _, loc := range e.namePattern().FindAllStringIndex(text, -1) {
		name := text[loc[0]:loc[1]]

		quantity := 1
		before := strings.TrimRight(text[:loc[0]], " ")
		if m := precedingInt.FindStringSubmatch(before); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
				quantity = n
			}
		}

		item, _, ok := e.catalog.Resolve(name)
		if !ok {
			continue
		}
		items = mergeItem(items, item, quantity)
	}
	return items
}

// extractWithLLM asks the completion provider for a JSON list of items and
// parses it defensively. Parse failures and schema mismatches are treated the
// same as "nothing extracted".
func (e *Extractor) extractWithLLM(ctx context.Context, provider llm.Provider, utterance string) ([]ResolvedItem, []string) {
	res := llm.Call(ctx, provider, llm.BudgetExtract, extractItemsPrompt, utterance)
	if !res.OK() {
		log.Printf("LLM item extraction failed (%s): %v", res.Kind, res.Err)
		return nil, nil
	}

	payload := llm.StripFences(res.Text)
	if !strings.HasPrefix(payload, "{") || !strings.HasSuffix(payload, "}") {
		log.Printf("LLM item extraction returned non-JSON output")
		return nil, nil
	}

	var parsed struct {
		Items []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("error parsing extracted items JSON: %v", err)
		return nil, nil
	}

	var items []ResolvedItem
	var notFound []string
	for _, entry := range parsed.Items {
		if entry.Name == "" {
			continue
		}
		quantity := entry.Quantity
		if quantity < 1 {
			quantity = 1
		}

		item, _, ok := e.catalog.Resolve(entry.Name)
		if !ok {
			notFound = appendUnique(notFound, entry.Name)
			continue
		}
		items = mergeItem(items, item, quantity)
	}
	return items, notFound
}

// mergeItem deduplicates by resolved item identity, summing quantities
func mergeItem(items []ResolvedItem, item models.MenuItem, quantity int) []ResolvedItem {
	for i := range items {
		if strings.EqualFold(items[i].Item.Name, item.Name) {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, ResolvedItem{Item: item, Quantity: quantity})
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return names
		}
	}
	return append(names, name)
}
