// Package request bundles a validated search invocation: the normalized
// query, auxiliary filters, and pagination.
package request

import (
	"fmt"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/search/filter"
	"github.com/hireloop/peoplesearch/internal/domain/search/query"
)

// Pagination limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request is a validated search request.
type Request struct {
	query    query.Query
	filters  filter.Filter
	page     int
	pageSize int
}

// New validates pagination and creates a Request.
// Zero page/pageSize mean "not set" and take the defaults; anything else
// outside page >= 1, 1 <= page_size <= 100 is domain.ErrInvalidPagination.
func New(q query.Query, filters filter.Filter, page, pageSize int) (Request, error) {
	if page == 0 {
		page = DefaultPage
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return Request{}, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidPagination)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Request{}, fmt.Errorf(
			"%w: page_size must be between 1 and %d", domain.ErrInvalidPagination, MaxPageSize,
		)
	}
	return Request{query: q, filters: filters, page: page, pageSize: pageSize}, nil
}

// Query returns the normalized search query.
func (r *Request) Query() *query.Query { return &r.query }

// Filters returns the auxiliary filter set.
func (r *Request) Filters() filter.Filter { return r.filters }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.pageSize }

// Offset returns the slice offset of the first result on this page.
func (r *Request) Offset() int { return (r.page - 1) * r.pageSize }
