package record

import (
	"context"

	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// Repository reads person records.
type Repository interface {
	Get(ctx context.Context, collection, id string) (person.Record, error)
}
