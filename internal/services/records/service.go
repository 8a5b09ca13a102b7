// Package records implements the Insert and ListAll operations over the
// things table.
package records

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"things-service/internal/models"
	"things-service/internal/utils"
)

// Store is the storage the service needs. Both database gateways satisfy it.
type Store interface {
	EnsureSchema(ctx context.Context) error
	InsertThing(ctx context.Context, name string) (int64, error)
	ListThings(ctx context.Context) ([]models.Thing, error)
}

// Result is the outcome of a successful operation.
type Result struct {
	Message string
	Things  []models.Thing
}

// Service runs record operations against a Store.
type Service struct {
	store  Store
	logger *zap.Logger

	mu          sync.Mutex
	schemaReady bool
}

// NewService creates a new record service.
func NewService(store Store) *Service {
	return &Service{
		store:  store,
		logger: utils.GetLogger(),
	}
}

// Prepare creates the things table. Call it once at start-up; a failure
// here is retried by the next operation.
func (s *Service) Prepare(ctx context.Context) error {
	return s.ensureSchema(ctx)
}

// ensureSchema runs EnsureSchema until it succeeds once.
func (s *Service) ensureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schemaReady {
		return nil
	}
	if err := s.store.EnsureSchema(ctx); err != nil {
		return models.NewStorageError("ensure schema", err)
	}
	s.schemaReady = true
	return nil
}

// Insert stores the thing named by params["thing"] and returns every thing.
// It returns models.ErrMissingThing without touching the store when the
// parameter is absent or empty.
func (s *Service) Insert(ctx context.Context, params map[string]string) (*Result, error) {
	name, err := models.ThingNameFromParams(params)
	if err != nil {
		return nil, err
	}

	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	id, err := s.store.InsertThing(ctx, name)
	if err != nil {
		return nil, models.NewStorageError("insert thing", err)
	}
	s.logger.Debug("Inserted thing", zap.Int64("id", id))

	return s.listAll(ctx)
}

// ListAll returns every thing in id order.
func (s *Service) ListAll(ctx context.Context) (*Result, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s.listAll(ctx)
}

func (s *Service) listAll(ctx context.Context) (*Result, error) {
	things, err := s.store.ListThings(ctx)
	if err != nil {
		return nil, models.NewStorageError("list things", err)
	}
	if things == nil {
		things = []models.Thing{}
	}

	return &Result{
		Message: models.SuccessMessage,
		Things:  things,
	}, nil
}
