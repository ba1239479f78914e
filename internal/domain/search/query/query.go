// Package query normalizes raw search input into the forms the matcher
// consumes: a lowercased string, its whitespace tokens, and a digits-only
// variant for phone comparison.
package query

import (
	"strings"

	"github.com/hireloop/peoplesearch/internal/domain"
)

// Query is a normalized, validated search query.
type Query struct {
	raw        string
	normalized string
	tokens     []string
	digitsOnly string
}

// New validates and normalizes a raw query string.
// Empty or whitespace-only input yields domain.ErrInvalidQuery.
func New(raw string) (Query, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Query{}, domain.ErrInvalidQuery
	}
	return Query{
		raw:        raw,
		normalized: normalized,
		tokens:     strings.Fields(normalized),
		digitsOnly: Digits(normalized),
	}, nil
}

// Raw returns the original query string.
func (q *Query) Raw() string { return q.raw }

// Normalized returns the lowercased, trimmed query.
func (q *Query) Normalized() string { return q.normalized }

// Tokens returns the whitespace-delimited pieces of the normalized query,
// order preserved, duplicates kept.
func (q *Query) Tokens() []string { return q.tokens }

// DigitsOnly returns the normalized query with everything but 0-9 and '+'
// removed. Used exclusively against phone numbers.
func (q *Query) DigitsOnly() string { return q.digitsOnly }

// Digits strips every character except 0-9 and '+' from s. Phone values go
// through the same reduction so formatting never blocks a match.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
