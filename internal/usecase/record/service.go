// Package record exposes single-record reads for the collections the
// search service serves.
package record

import (
	"context"
	"fmt"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// Service handles record lookups.
type Service struct {
	repo Repository
}

// New creates a record service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get fetches one record from a known collection.
func (s *Service) Get(ctx context.Context, collection, id string) (person.Record, error) {
	if !person.KnownCollection(collection) {
		return person.Record{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
	rec, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return person.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}
