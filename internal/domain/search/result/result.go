// Package result holds the output shapes of a search: per-record scores
// used for ranking, and the assembled page handed to callers.
package result

import (
	"github.com/hireloop/peoplesearch/internal/domain/person"
	"github.com/hireloop/peoplesearch/internal/domain/search/match"
)

// ScoredRecord pairs a record with its summed relevance score. The tier
// breakdown is kept for ranking diagnostics only and never leaves the core.
type ScoredRecord struct {
	record     person.Record
	totalScore int
	tiers      []match.FieldScore
}

// NewScored creates a scored record.
func NewScored(rec person.Record, totalScore int, tiers []match.FieldScore) ScoredRecord {
	return ScoredRecord{record: rec, totalScore: totalScore, tiers: tiers}
}

// Record returns the underlying person record.
func (s *ScoredRecord) Record() person.Record { return s.record }

// TotalScore returns the summed field scores.
func (s *ScoredRecord) TotalScore() int { return s.totalScore }

// Tiers returns the non-zero per-field scores that produced the total.
func (s *ScoredRecord) Tiers() []match.FieldScore { return s.tiers }

// Page is one assembled page of matches. Total counts all matches before
// pagination, so a page past the end still reports the full count.
type Page struct {
	Total    int
	Page     int
	PageSize int
	Items    []person.Record
}
