package search

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
	"github.com/hireloop/peoplesearch/internal/domain/search/filter"
	"github.com/hireloop/peoplesearch/internal/domain/search/query"
	"github.com/hireloop/peoplesearch/internal/domain/search/request"
)

// --- Mocks ---

type mockRepo struct {
	records []person.Record
	err     error
	calls   int
}

func (m *mockRepo) List(_ context.Context, _ string) ([]person.Record, error) {
	m.calls++
	return m.records, m.err
}

func user(id, first, last, email, phone string) person.Record {
	return person.Reconstruct(id, first, last, email, phone, 0, "", 0, nil, 0)
}

func makeRequest(t *testing.T, raw string, f filter.Filter, page, pageSize int) *request.Request {
	t.Helper()
	q, err := query.New(raw)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	r, err := request.New(q, f, page, pageSize)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

// --- Tests ---

func TestSearch_FullNameExactRanksFirst(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("u2", "Johnny", "Doer", "jd@x.com", ""),
		user("u1", "John", "Doe", "j@x.com", ""),
	}}
	svc := New(repo)

	page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "John Doe", filter.Filter{}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("Total = %d, want 2", page.Total)
	}
	if page.Items[0].ID() != "u1" || page.Items[1].ID() != "u2" {
		t.Errorf("order = [%s %s], want [u1 u2]", page.Items[0].ID(), page.Items[1].ID())
	}
}

func TestSearch_PhoneDigitsOnlyPath(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("u1", "Ann", "Lee", "ann@x.com", "+1 (555) 1234"),
	}}
	svc := New(repo)

	page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "555-1234", filter.Filter{}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("Total = %d, want 1", page.Total)
	}
}

func TestSearch_NoMatchIsNotAnError(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("u1", "Ann", "Lee", "ann@x.com", ""),
	}}
	svc := New(repo)

	page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "xyz-no-match", filter.Filter{}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Errorf("got total=%d items=%d, want empty result", page.Total, len(page.Items))
	}
}

func TestSearch_UnknownCollection(t *testing.T) {
	svc := New(&mockRepo{})
	_, err := svc.Search(context.Background(), "skills", makeRequest(t, "john", filter.Filter{}, 0, 0))
	if !errors.Is(err, domain.ErrUnknownCollection) {
		t.Errorf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestSearch_RepositoryErrorPropagates(t *testing.T) {
	repo := &mockRepo{err: errors.New("store down")}
	svc := New(repo)
	_, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "john", filter.Filter{}, 0, 0))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSearch_FiltersExcludeHighScorers(t *testing.T) {
	records := []person.Record{
		person.Reconstruct("c1", "John", "Doe", "j@x.com", "", 0, "Berlin", 5, nil, 0),
		person.Reconstruct("c2", "John", "Doe", "j2@x.com", "", 0, "Munich", 5, nil, 0),
	}
	loc, err := filter.New(nil, "berlin", nil)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	svc := New(&mockRepo{records: records})

	page, err := svc.Search(context.Background(), person.CollectionCandidates, makeRequest(t, "John Doe", loc, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID() != "c1" {
		t.Errorf("expected only the Berlin candidate, got total=%d", page.Total)
	}
}

func TestSearch_PaginationBeyondLastPage(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("u1", "John", "Doe", "", ""),
		user("u2", "John", "Roe", "", ""),
		user("u3", "John", "Poe", "", ""),
	}}
	svc := New(repo)

	page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "john", filter.Filter{}, 5, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("expected empty slice past the end, got %d items", len(page.Items))
	}
	if page.Total != 3 {
		t.Errorf("Total = %d, want the full match count 3", page.Total)
	}
}

func TestSearch_PagesConcatenateWithoutGaps(t *testing.T) {
	var records []person.Record
	for i := 0; i < 7; i++ {
		records = append(records, user(fmt.Sprintf("u%d", i), "John", "Doe", "", ""))
	}
	svc := New(&mockRepo{records: records})

	var got []string
	for p := 1; p <= 4; p++ {
		page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "john", filter.Filter{}, p, 2))
		if err != nil {
			t.Fatalf("page %d: %v", p, err)
		}
		for i := range page.Items {
			got = append(got, page.Items[i].ID())
		}
	}

	want := []string{"u0", "u1", "u2", "u3", "u4", "u5", "u6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("concatenated pages = %v, want %v", got, want)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("b", "John", "Doe", "", ""),
		user("a", "John", "Doe", "", ""),
		user("c", "Johnny", "Doe", "", ""),
	}}
	svc := New(repo)
	req := makeRequest(t, "john doe", filter.Filter{}, 0, 0)

	first, err := svc.Search(context.Background(), person.CollectionUsers, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Search(context.Background(), person.CollectionUsers, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical calls must produce identical output, tie order included")
	}
}

func TestSearch_TiebreakByIDAscending(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("z", "John", "", "", ""),
		user("a", "John", "", "", ""),
		user("m", "John", "", "", ""),
	}}
	svc := New(repo)

	page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "john", filter.Filter{}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := []string{page.Items[0].ID(), page.Items[1].ID(), page.Items[2].ID()}
	if !reflect.DeepEqual(ids, []string{"a", "m", "z"}) {
		t.Errorf("tie order = %v, want [a m z]", ids)
	}
}

func TestSearch_EmailExactScoresAtLeastExact(t *testing.T) {
	repo := &mockRepo{records: []person.Record{
		user("u1", "Ann", "Lee", "j@x.com", ""),
		user("u2", "Jax", "Com", "other@x.com", ""),
	}}
	svc := New(repo)

	page, err := svc.Search(context.Background(), person.CollectionUsers, makeRequest(t, "J@X.com", filter.Filter{}, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total < 1 || page.Items[0].ID() != "u1" {
		t.Fatalf("expected the exact email holder to rank first, got %+v", page)
	}
}

func TestSearch_ParallelMatchesSerial(t *testing.T) {
	var records []person.Record
	for i := 0; i < 2000; i++ {
		records = append(records, user(fmt.Sprintf("u%04d", i), "John", "Doe", "", ""))
	}
	serial := New(&mockRepo{records: records}).WithParallelThreshold(1 << 30)
	parallel := New(&mockRepo{records: records}).WithParallelThreshold(1)

	req := makeRequest(t, "john", filter.Filter{}, 1, 100)
	a, err := serial.Search(context.Background(), person.CollectionUsers, req)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	b, err := parallel.Search(context.Background(), person.CollectionUsers, req)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("fan-out scoring must not change results")
	}
}
