package record

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
)

func TestList_ParsesRecords(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanFn = func(_ context.Context, pattern string) ([]string, error) {
		if pattern != "peoplesearch:users:*" {
			t.Errorf("pattern = %q", pattern)
		}
		return []string{"peoplesearch:users:u2", "peoplesearch:users:u1"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		// Repo sorts keys before fetching.
		want := []string{"peoplesearch:users:u1", "peoplesearch:users:u2"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("keys = %v, want %v", keys, want)
		}
		return []map[string]string{
			userHash("John", "Doe", "j@x.com", "555-1234"),
			userHash("Jane", "Roe", "jane@x.com", ""),
		}, nil
	}

	records, err := repo.List(context.Background(), person.CollectionUsers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID() != "u1" || records[0].FirstName() != "John" {
		t.Errorf("first record = %s/%s", records[0].ID(), records[0].FirstName())
	}
}

func TestList_EmptyCollection(t *testing.T) {
	repo, _ := newTestRepo(t)
	records, err := repo.List(context.Background(), person.CollectionUsers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestList_SkipsVanishedKeys(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"peoplesearch:users:u1", "peoplesearch:users:gone"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		return []map[string]string{
			{}, // "gone" sorts first and is empty
			userHash("John", "Doe", "", ""),
		}, nil
	}

	records, err := repo.List(context.Background(), person.CollectionUsers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID() != "u1" {
		t.Errorf("expected only u1, got %d records", len(records))
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Get(context.Background(), person.CollectionUsers, "missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGet_ParsesAuxiliaryFields(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "peoplesearch:candidates:c1" {
			t.Errorf("key = %q", key)
		}
		return map[string]string{
			fieldFirstName:       "Jane",
			fieldLastName:        "Smith",
			fieldLocation:        "Berlin",
			fieldTotalExperience: "4.5",
			fieldSkills:          "go,redis",
			fieldCreatedAt:       "1700000000000",
		}, nil
	}

	rec, err := repo.Get(context.Background(), person.CollectionCandidates, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Location() != "Berlin" || rec.TotalExperience() != 4.5 {
		t.Errorf("aux fields = %q/%v", rec.Location(), rec.TotalExperience())
	}
	if !reflect.DeepEqual(rec.Skills(), []string{"go", "redis"}) {
		t.Errorf("skills = %v", rec.Skills())
	}
}

func TestParseHashFields_DropsUnknownFields(t *testing.T) {
	m := userHash("John", "Doe", "j@x.com", "")
	m["password_hash"] = "secret"
	rec := parseHashFields("u1", m)
	if rec.Email() != "j@x.com" {
		t.Errorf("email = %q", rec.Email())
	}
	// Nothing on Record can carry the unknown field; this documents that
	// secret material never survives parsing.
}

func TestWithKeyPrefix(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms).WithKeyPrefix("hr:")
	ms.scanFn = func(_ context.Context, pattern string) ([]string, error) {
		if pattern != "hr:users:*" {
			t.Errorf("pattern = %q, want custom prefix", pattern)
		}
		return nil, nil
	}
	if _, err := repo.List(context.Background(), person.CollectionUsers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildHashFields_RoundTrip(t *testing.T) {
	rec := person.Reconstruct("c1", "Jane", "Smith", "jane@x.com", "+49 30 1234",
		2, "Berlin", 4.5, []string{"go"}, 1700000000000)
	parsed := parseHashFields("c1", BuildHashFields(&rec))
	if !reflect.DeepEqual(parsed, rec) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", parsed, rec)
	}
}
