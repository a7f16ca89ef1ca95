package insight

import (
	"sort"
	"strings"
)

// Category is a named keyword list
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Lexicon is an ordered list of categories. Order breaks ranking ties.
type Lexicon []Category

// CategoryHit is the number of texts that matched a category
type CategoryHit struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Hits holds per-category counts in lexicon order
type Hits []CategoryHit

// CountKeywordHits counts, per category, how many texts contain at least one
// of the category's keywords. A text counts once per category no matter how
// many keywords it repeats. Empty texts contribute nothing.
func CountKeywordHits(texts []string, lex Lexicon, m Matcher) Hits {
	if m == nil {
		m = SubstringMatcher{}
	}
	hits := make(Hits, len(lex))
	for i, c := range lex {
		hits[i].Category = c.Name
	}
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		lower := strings.ToLower(text)
		for i, c := range lex {
			if matchesAny(lower, c.Keywords, m) {
				hits[i].Count++
			}
		}
	}
	return hits
}

// MatchesAny reports whether text contains any of the keywords
func MatchesAny(text string, keywords []string, m Matcher) bool {
	if m == nil {
		m = SubstringMatcher{}
	}
	return matchesAny(strings.ToLower(text), keywords, m)
}

func matchesAny(lower string, keywords []string, m Matcher) bool {
	for _, kw := range keywords {
		if m.Matches(lower, kw) {
			return true
		}
	}
	return false
}

// Count returns the hit count for a category, 0 when unknown
func (h Hits) Count(category string) int {
	for _, hit := range h {
		if hit.Category == category {
			return hit.Count
		}
	}
	return 0
}

// Map returns the counts keyed by category
func (h Hits) Map() map[string]int {
	m := make(map[string]int, len(h))
	for _, hit := range h {
		m[hit.Category] = hit.Count
	}
	return m
}

// NonZero drops categories without hits, keeping order
func (h Hits) NonZero() Hits {
	out := Hits{}
	for _, hit := range h {
		if hit.Count > 0 {
			out = append(out, hit)
		}
	}
	return out
}

// Top is shorthand for RankTop(h, limit)
func (h Hits) Top(limit int) []string {
	return RankTop(h, limit)
}

// RankTop returns up to limit category names ordered by count descending.
// Equal counts keep lexicon order.
func RankTop(h Hits, limit int) []string {
	sorted := make(Hits, len(h))
	copy(sorted, h)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	names := make([]string, len(sorted))
	for i, hit := range sorted {
		names[i] = hit.Category
	}
	return names
}

// Percent returns count/total*100, or 0 when total is not positive
func Percent(count, total int) float64 {
	if total <= 0 || count <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
