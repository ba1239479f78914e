// Package record loads person records from the hash store.
package record

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// store is the consumer interface for record operations.
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/search.Repository and usecase/record.Repository.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a record repository with the default key prefix.
func New(s store) *Repo {
	return &Repo{store: s, keyPrefix: domain.DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key namespace. Empty keeps the default.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.keyPrefix = prefix
	}
	return r
}

func (r *Repo) collectionPrefix(collection string) string {
	return r.keyPrefix + collection + ":"
}

// List materializes every record of a collection. Key order from SCAN is
// arbitrary; callers needing determinism sort on record identity.
func (r *Repo) List(ctx context.Context, collection string) ([]person.Record, error) {
	prefix := r.collectionPrefix(collection)

	keys, err := r.store.Scan(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	// Stable fetch order keeps multi-key round-trips reproducible.
	sort.Strings(keys)

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}

	records := make([]person.Record, 0, len(hashes))
	for i, fields := range hashes {
		if len(fields) == 0 {
			// Key vanished between SCAN and HGETALL.
			continue
		}
		id := strings.TrimPrefix(keys[i], prefix)
		records = append(records, parseHashFields(id, fields))
	}
	return records, nil
}

// Get fetches a single record by ID.
func (r *Repo) Get(ctx context.Context, collection, id string) (person.Record, error) {
	fields, err := r.store.HGetAll(ctx, r.collectionPrefix(collection)+id)
	if err != nil {
		return person.Record{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if len(fields) == 0 {
		return person.Record{}, fmt.Errorf("%w: %s/%s", domain.ErrRecordNotFound, collection, id)
	}
	return parseHashFields(id, fields), nil
}
