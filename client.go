// Package peoplesearch is an embeddable client for the fuzzy people search
// engine. It wires the same pipeline the HTTP server uses directly onto a
// Redis connection, for callers that want in-process search without the API.
package peoplesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hireloop/peoplesearch/internal/db"
	dbRedis "github.com/hireloop/peoplesearch/internal/db/redis"
	"github.com/hireloop/peoplesearch/internal/domain/person"
	"github.com/hireloop/peoplesearch/internal/domain/search/filter"
	"github.com/hireloop/peoplesearch/internal/domain/search/query"
	"github.com/hireloop/peoplesearch/internal/domain/search/request"
	recordrepo "github.com/hireloop/peoplesearch/internal/repository/record"
	recorduc "github.com/hireloop/peoplesearch/internal/usecase/record"
	searchuc "github.com/hireloop/peoplesearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Option configures the client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs             []string
	username          string
	password          string
	keyPrefix         string
	parallelThreshold int
}

// WithRedis sets the Redis connection parameters.
func WithRedis(addrs []string, username, password string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
	}
}

// WithKeyPrefix overrides the key namespace records are stored under.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithParallelThreshold overrides the record count above which scoring
// fans out across workers.
func WithParallelThreshold(n int) Option {
	return func(c *clientConfig) {
		c.parallelThreshold = n
	}
}

// SearchOptions narrow and page a search. The zero value means default
// pagination and no auxiliary filters.
type SearchOptions struct {
	Page          int
	PageSize      int
	RoleID        *int
	Location      string
	MinExperience *float64
}

// Person is the public projection of a matched record.
type Person struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	RoleID          int
	Location        string
	TotalExperience float64
	Skills          []string
	CreatedAt       int64
}

// Page is one page of search results with the pre-pagination total.
type Page struct {
	Total    int
	Page     int
	PageSize int
	Items    []Person
}

// Client is the peoplesearch library entry point.
type Client struct {
	store     db.Store
	searchSvc *searchuc.Service
	recordSvc *recorduc.Service
}

// New creates a Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("peoplesearch: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("peoplesearch: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("peoplesearch: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	repo := recordrepo.New(store).WithKeyPrefix(cfg.keyPrefix)
	return &Client{
		store:     store,
		searchSvc: searchuc.New(repo).WithParallelThreshold(cfg.parallelThreshold),
		recordSvc: recorduc.New(repo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// SearchUsers runs a relevance search over the users collection.
func (c *Client) SearchUsers(ctx context.Context, q string, opts SearchOptions) (Page, error) {
	return c.search(ctx, person.CollectionUsers, q, opts)
}

// SearchCandidates runs a relevance search over the candidates collection.
func (c *Client) SearchCandidates(ctx context.Context, q string, opts SearchOptions) (Page, error) {
	return c.search(ctx, person.CollectionCandidates, q, opts)
}

// GetRecord fetches a single record by collection and ID.
func (c *Client) GetRecord(ctx context.Context, collection, id string) (Person, error) {
	rec, err := c.recordSvc.Get(ctx, collection, id)
	if err != nil {
		return Person{}, fmt.Errorf("peoplesearch: %w", err)
	}
	return personFromRecord(&rec), nil
}

func (c *Client) search(ctx context.Context, collection, q string, opts SearchOptions) (Page, error) {
	parsed, err := query.New(q)
	if err != nil {
		return Page{}, fmt.Errorf("peoplesearch: %w", err)
	}

	f, err := filter.New(opts.RoleID, opts.Location, opts.MinExperience)
	if err != nil {
		return Page{}, fmt.Errorf("peoplesearch: %w", err)
	}

	req, err := request.New(parsed, f, opts.Page, opts.PageSize)
	if err != nil {
		return Page{}, fmt.Errorf("peoplesearch: %w", err)
	}

	page, err := c.searchSvc.Search(ctx, collection, &req)
	if err != nil {
		return Page{}, fmt.Errorf("peoplesearch: %w", err)
	}

	items := make([]Person, len(page.Items))
	for i := range page.Items {
		items[i] = personFromRecord(&page.Items[i])
	}
	return Page{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    items,
	}, nil
}

func personFromRecord(rec *person.Record) Person {
	return Person{
		ID:              rec.ID(),
		FirstName:       rec.FirstName(),
		LastName:        rec.LastName(),
		Email:           rec.Email(),
		PhoneNumber:     rec.PhoneNumber(),
		RoleID:          rec.RoleID(),
		Location:        rec.Location(),
		TotalExperience: rec.TotalExperience(),
		Skills:          rec.Skills(),
		CreatedAt:       rec.CreatedAt(),
	}
}
