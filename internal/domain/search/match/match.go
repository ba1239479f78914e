// Package match scores a single field value against a normalized query.
//
// Matching strength is a fixed tier table evaluated top-down; the first
// qualifying tier wins, so a field never double-counts. Tiers are additive
// across distinct fields, and the exact-full-name bonus is the only tier
// that stacks on top of other fields covering the same text.
package match

import (
	"strings"

	"github.com/hireloop/peoplesearch/internal/domain/search/query"
)

// Tier is a named matching strength level.
type Tier string

// Tiers, strongest first.
const (
	TierExactFullName Tier = "exact_full_name"
	TierExact         Tier = "exact"
	TierStartsWith    Tier = "starts_with"
	TierContains      Tier = "contains"
	TierWordStart     Tier = "word_start"
	TierNone          Tier = "none"
)

// Points per tier.
const (
	PointsExactFullName    = 150
	PointsExact            = 100
	PointsNearPrefix       = 75
	PointsPrefix           = 50
	PointsBoundaryContains = 40
	PointsContains         = 25
	PointsWordStart        = 15
)

// Matching policy constants.
const (
	// minPrefixLen is the minimum query length for the starts_with tier.
	minPrefixLen = 2
	// nearPrefixSlack is how close (in characters) a prefix must come to the
	// field's full length to count as a near-complete match.
	nearPrefixSlack = 2
)

// FieldScore is the outcome of matching one field against the query.
type FieldScore struct {
	field  string
	tier   Tier
	points int
}

// Field returns the scored field name.
func (s FieldScore) Field() string { return s.field }

// Tier returns the qualifying tier (TierNone when nothing matched).
func (s FieldScore) Tier() Tier { return s.tier }

// Points returns the tier's score contribution (0 for TierNone).
func (s FieldScore) Points() int { return s.points }

func none(field string) FieldScore {
	return FieldScore{field: field, tier: TierNone}
}

// Field scores a plain text field value against the query. Missing values
// score TierNone, never error.
func Field(field, value string, q *query.Query) FieldScore {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return none(field)
	}
	return score(field, v, q.Normalized(), q.Tokens())
}

// Phone scores a phone field. Both sides are reduced to digits (plus '+')
// first, so separators and parentheses never block a match.
func Phone(field, value string, q *query.Query) FieldScore {
	v := query.Digits(strings.ToLower(value))
	qd := q.DigitsOnly()
	if v == "" || qd == "" {
		return none(field)
	}
	return score(field, v, qd, []string{qd})
}

// FullName checks the synthetic "first last" form for an exact match and
// emits the stacking bonus tier. Any weaker full-name similarity is already
// covered by the individual name fields.
func FullName(first, last string, q *query.Query) FieldScore {
	full := strings.ToLower(strings.TrimSpace(first + " " + last))
	if full == "" || full != q.Normalized() {
		return none("full_name")
	}
	return FieldScore{field: "full_name", tier: TierExactFullName, points: PointsExactFullName}
}

// score runs the tier table over a lowercased field value.
func score(field, v, normalized string, tokens []string) FieldScore {
	if v == normalized {
		return FieldScore{field: field, tier: TierExact, points: PointsExact}
	}

	if len(normalized) >= minPrefixLen && strings.HasPrefix(v, normalized) {
		points := PointsPrefix
		if len(normalized) >= len(v)-nearPrefixSlack {
			points = PointsNearPrefix
		}
		return FieldScore{field: field, tier: TierStartsWith, points: points}
	}

	if idx := strings.Index(v, normalized); idx >= 0 {
		points := PointsContains
		if idx == 0 || isSpace(v[idx-1]) {
			points = PointsBoundaryContains
		}
		return FieldScore{field: field, tier: TierContains, points: points}
	}

	for _, word := range strings.Fields(v) {
		for _, tok := range tokens {
			if strings.HasPrefix(word, tok) {
				return FieldScore{field: field, tier: TierWordStart, points: PointsWordStart}
			}
		}
	}

	return none(field)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
