// Package filter holds the auxiliary predicates applied alongside fuzzy
// scoring: exact role match, case-insensitive location substring, and a
// minimum-experience lower bound. Filters AND together and are orthogonal
// to the relevance score.
package filter

import (
	"fmt"
	"strings"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// Filter is a validated AND-combination of auxiliary predicates.
// The zero value matches every record.
type Filter struct {
	roleID        *int
	location      string
	minExperience *float64
}

// New validates and creates a Filter. location is matched as a
// case-insensitive substring; minExperience must be >= 0 when set.
func New(roleID *int, location string, minExperience *float64) (Filter, error) {
	if minExperience != nil && *minExperience < 0 {
		return Filter{}, fmt.Errorf("%w: min_experience must be >= 0", domain.ErrInvalidFilter)
	}
	return Filter{
		roleID:        roleID,
		location:      strings.ToLower(strings.TrimSpace(location)),
		minExperience: minExperience,
	}, nil
}

// RoleID returns the role equality predicate value (nil when unset).
func (f Filter) RoleID() *int { return f.roleID }

// Location returns the lowercased location substring predicate.
func (f Filter) Location() string { return f.location }

// MinExperience returns the experience lower bound (nil when unset).
func (f Filter) MinExperience() *float64 { return f.minExperience }

// IsEmpty reports whether no predicate is set.
func (f Filter) IsEmpty() bool {
	return f.roleID == nil && f.location == "" && f.minExperience == nil
}

// Matches reports whether rec passes every set predicate.
func (f Filter) Matches(rec *person.Record) bool {
	if f.roleID != nil && rec.RoleID() != *f.roleID {
		return false
	}
	if f.location != "" && !strings.Contains(strings.ToLower(rec.Location()), f.location) {
		return false
	}
	if f.minExperience != nil && rec.TotalExperience() < *f.minExperience {
		return false
	}
	return true
}
