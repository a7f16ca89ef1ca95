// Package insight derives the implementation roadmap, the jobs-to-be-done
// analysis and the campaign messaging from a completed survey result.
//
// Every analyzer is a pure function of its input and the engine's tables:
// no I/O, no shared mutable state, safe to call concurrently.
package insight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Engine runs the three analyzers over a fixed set of tables
type Engine struct {
	tables    *Tables
	matcher   Matcher
	benefitRe *regexp.Regexp
	signature string
}

// Option configures an Engine
type Option func(*Engine)

// WithTables replaces the built-in tables
func WithTables(t *Tables) Option {
	return func(e *Engine) {
		if t != nil {
			e.tables = t
		}
	}
}

// WithMatcher replaces the keyword matcher
func WithMatcher(m Matcher) Option {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// NewEngine creates an engine with the default tables and substring matching
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tables:  DefaultTables(),
		matcher: SubstringMatcher{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.benefitRe = compileConnectives(e.tables.BenefitConnectives)
	e.signature = signatureOf(e.tables, e.matcher)
	return e
}

// Signature identifies the engine's tables and matcher. Engines with equal
// signatures produce equal reports for equal input.
func (e *Engine) Signature() string {
	return e.signature
}

func signatureOf(t *Tables, m Matcher) string {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "%T\n", m)
	data, err := json.Marshal(t)
	if err != nil {
		// NaN thresholds; such an engine never shares cache entries
		_, _ = fmt.Fprintf(h, "%p", t)
	} else {
		_, _ = h.Write(data)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Tables returns the engine's tables. Callers must not modify them.
func (e *Engine) Tables() *Tables {
	return e.tables
}

func compileConnectives(connectives []string) *regexp.Regexp {
	var alts []string
	for _, c := range connectives {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(strings.ToLower(c)))
	}
	if len(alts) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\s+([^.!?;\n]+)`)
}
