// Package recordstest provides an in-memory records.Store for tests.
package recordstest

import (
	"context"
	"errors"
	"sync"

	"things-service/internal/models"
)

// ErrNoTable mirrors the storage error for querying a missing table.
var ErrNoTable = errors.New("relation \"things\" does not exist")

// Store is an in-memory things table with failure injection.
type Store struct {
	mu     sync.Mutex
	table  bool
	nextID int64
	things []models.Thing

	SchemaErr error
	InsertErr error
	ListErr   error
	HealthErr error

	SchemaCalls int
	InsertCalls int
	ListCalls   int
}

// New returns a Store with no things table.
func New() *Store {
	return &Store{nextID: 1}
}

// WithTable returns a Store whose things table already exists.
func WithTable(names ...string) *Store {
	s := New()
	s.table = true
	for _, name := range names {
		s.add(name)
	}
	return s
}

func (s *Store) add(name string) int64 {
	id := s.nextID
	s.nextID++
	s.things = append(s.things, models.Thing{ID: id, Name: name})
	return id
}

// EnsureSchema creates the table unless SchemaErr is set.
func (s *Store) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SchemaCalls++
	if s.SchemaErr != nil {
		return s.SchemaErr
	}
	s.table = true
	return nil
}

// InsertThing appends a thing with the next id.
func (s *Store) InsertThing(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.InsertCalls++
	if s.InsertErr != nil {
		return 0, s.InsertErr
	}
	if !s.table {
		return 0, ErrNoTable
	}
	return s.add(name), nil
}

// ListThings returns a copy of the table contents.
func (s *Store) ListThings(ctx context.Context) ([]models.Thing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ListCalls++
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if !s.table {
		return nil, ErrNoTable
	}
	return append([]models.Thing{}, s.things...), nil
}

// HasTable reports whether the table has been created.
func (s *Store) HasTable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// HealthCheck returns HealthErr.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.HealthErr
}

// Close is a no-op.
func (s *Store) Close() {}
