package search

import (
	"context"

	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// Repository supplies the already-materialized record set for a collection.
type Repository interface {
	List(ctx context.Context, collection string) ([]person.Record, error)
}
