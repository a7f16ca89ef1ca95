package insight

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher decides whether a keyword occurs in a text. Text is passed
// already lower-cased.
type Matcher interface {
	Matches(text, keyword string) bool
}

// SubstringMatcher is plain case-insensitive substring containment
type SubstringMatcher struct{}

// Matches implements Matcher
func (SubstringMatcher) Matches(text, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	return strings.Contains(text, kw)
}

// WordMatcher only accepts keyword occurrences that start and end on a word
// boundary, so "ai" does not match "maintain".
type WordMatcher struct{}

// Matches implements Matcher
func (WordMatcher) Matches(text, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], kw)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(kw)
		if isBoundaryBefore(text, start) && isBoundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func isBoundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func isBoundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MatcherByName resolves a configured matcher name
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substring":
		return SubstringMatcher{}, nil
	case "word":
		return WordMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}
