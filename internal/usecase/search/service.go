// Package search implements the relevance pipeline: auxiliary filtering,
// per-record scoring, deterministic ranking, and pagination.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
	"github.com/hireloop/peoplesearch/internal/domain/search/match"
	"github.com/hireloop/peoplesearch/internal/domain/search/query"
	"github.com/hireloop/peoplesearch/internal/domain/search/request"
	"github.com/hireloop/peoplesearch/internal/domain/search/result"
)

// defaultParallelThreshold is the record count above which scoring fans out
// across workers. Below it a single pass is faster than the goroutine setup.
const defaultParallelThreshold = 512

// Service runs fuzzy relevance search over person collections.
type Service struct {
	repo              Repository
	parallelThreshold int

	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	scored   prometheus.Counter
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo, parallelThreshold: defaultParallelThreshold}
}

// WithParallelThreshold overrides the fan-out threshold. Values <= 0 keep
// the default.
func (s *Service) WithParallelThreshold(n int) *Service {
	if n > 0 {
		s.parallelThreshold = n
	}
	return s
}

// WithMetrics attaches search metrics. Any collector may be nil.
func (s *Service) WithMetrics(
	searches *prometheus.CounterVec,
	duration *prometheus.HistogramVec,
	scored prometheus.Counter,
) *Service {
	s.searches = searches
	s.duration = duration
	s.scored = scored
	return s
}

// Search loads the collection, applies auxiliary filters, scores and ranks
// the survivors, and returns the requested page. A query matching nothing
// is not an error: the page is empty and Total is 0.
func (s *Service) Search(
	ctx context.Context, collection string, req *request.Request,
) (result.Page, error) {
	if !person.KnownCollection(collection) {
		return result.Page{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}

	start := time.Now()

	records, err := s.repo.List(ctx, collection)
	if err != nil {
		return result.Page{}, fmt.Errorf("list %s: %w", collection, err)
	}

	// Filters are cheap equality/range checks; running them first bounds
	// the record set the scorer has to touch.
	if f := req.Filters(); !f.IsEmpty() {
		kept := make([]person.Record, 0, len(records))
		for i := range records {
			if f.Matches(&records[i]) {
				kept = append(kept, records[i])
			}
		}
		records = kept
	}

	scored, err := s.scoreAll(ctx, records, req.Query())
	if err != nil {
		return result.Page{}, fmt.Errorf("score %s: %w", collection, err)
	}
	rank(scored)

	items := pageOf(scored, req.Offset(), req.PageSize())
	projections := make([]person.Record, len(items))
	for i := range items {
		projections[i] = items[i].Record()
	}

	s.observe(collection, time.Since(start), len(records))

	return result.Page{
		Total:    len(scored),
		Page:     req.Page(),
		PageSize: req.PageSize(),
		Items:    projections,
	}, nil
}

// scoreRecord folds the fixed field list into one total. Each field
// contributes at most one tier; the full-name bonus stacks on top.
func scoreRecord(rec *person.Record, q *query.Query) result.ScoredRecord {
	fieldScores := []match.FieldScore{
		match.Field("first_name", rec.FirstName(), q),
		match.Field("last_name", rec.LastName(), q),
		match.Field("email", rec.Email(), q),
		match.Phone("phone_number", rec.PhoneNumber(), q),
		match.FullName(rec.FirstName(), rec.LastName(), q),
	}

	total := 0
	var tiers []match.FieldScore
	for _, fs := range fieldScores {
		if fs.Points() > 0 {
			total += fs.Points()
			tiers = append(tiers, fs)
		}
	}
	return result.NewScored(*rec, total, tiers)
}

// scoreChunk scores a slice of records serially, dropping non-matches.
func scoreChunk(records []person.Record, q *query.Query) []result.ScoredRecord {
	out := make([]result.ScoredRecord, 0, len(records))
	for i := range records {
		if sr := scoreRecord(&records[i], q); sr.TotalScore() > 0 {
			out = append(out, sr)
		}
	}
	return out
}

func (s *Service) observe(collection string, elapsed time.Duration, recordCount int) {
	if s.searches != nil {
		s.searches.WithLabelValues(collection).Inc()
	}
	if s.duration != nil {
		s.duration.WithLabelValues(collection).Observe(elapsed.Seconds())
	}
	if s.scored != nil {
		s.scored.Add(float64(recordCount))
	}
}
