package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driven"
	"github.com/custodia-labs/recipebook/internal/core/seed"
	"github.com/custodia-labs/recipebook/internal/logger"
)

// SeedFunc returns the records used when storage holds no usable catalog.
type SeedFunc func() ([]domain.Recipe, error)

// RecordStore owns the ordered recipe collection and keeps it in sync with a
// single key-value slot. Callers always receive deep copies.
type RecordStore struct {
	mu       sync.RWMutex
	kv       driven.KeyValueStore
	key      string
	seed     SeedFunc
	records  []domain.Recipe
	nextID   domain.RecipeID
	revision uint64

	// readErr is set when the last Load could not read the backend.
	// Mutations are refused until a later Load succeeds.
	readErr error
}

// NewRecordStore creates a store backed by kv. A nil seedFn uses the
// embedded seed set. The store is empty until Load is called.
func NewRecordStore(kv driven.KeyValueStore, seedFn SeedFunc) *RecordStore {
	if seedFn == nil {
		seedFn = seed.Recipes
	}
	return &RecordStore{
		kv:     kv,
		key:    RecipesKey,
		seed:   seedFn,
		nextID: 1,
	}
}

// Load reads the persisted catalog. A missing or malformed slot installs the
// seed set instead; decode problems are logged and not returned. When the
// backend itself cannot be read the error is returned, the store is left
// empty and mutations fail with ErrStoreUnavailable until a Load succeeds,
// so stored recipes are never overwritten.
func (s *RecordStore) Load(ctx context.Context) error {
	defer logger.Timed("record store load")()

	data, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("no stored catalog under %q, using seed set", s.key)
		return s.installSeed()
	case err != nil:
		readErr := fmt.Errorf("reading %q: %w", s.key, err)
		s.mu.Lock()
		s.records = nil
		s.readErr = readErr
		s.revision++
		s.mu.Unlock()
		return readErr
	}

	records, nextID, err := decodeSnapshot(data)
	if err != nil {
		decodeErr := &domain.PersistenceDecodeError{Key: s.key, Err: err}
		logger.Warn("%v, using seed set", decodeErr)
		return s.installSeed()
	}

	s.mu.Lock()
	s.records = records
	s.nextID = nextID
	s.readErr = nil
	s.revision++
	s.mu.Unlock()

	logger.Debug("loaded %d recipes (next id %d)", len(records), nextID)
	return nil
}

func (s *RecordStore) installSeed() error {
	records, err := s.seed()
	if err != nil {
		return fmt.Errorf("loading seed set: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cloneRecords(records)
	s.nextID = nextIDFor(s.records, 1)
	s.readErr = nil
	s.revision++
	return nil
}

// List returns every record in storage order.
func (s *RecordStore) List() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Get returns the record with the given id.
func (s *RecordStore) Get(id domain.RecipeID) (domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Recipe{}, &domain.NotFoundError{ID: id}
	}
	return s.records[i].Clone(), nil
}

// Create validates fields, assigns the next id and appends the record.
func (s *RecordStore) Create(ctx context.Context, fields domain.RecipeFields) (domain.Recipe, error) {
	if err := fields.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := domain.NewRecipe(s.nextID, fields)
	next := append(cloneRecords(s.records), recipe)
	if err := s.commit(ctx, next, s.nextID+1); err != nil {
		return domain.Recipe{}, err
	}

	logger.Debug("created recipe %d", recipe.ID)
	return recipe.Clone(), nil
}

// Update replaces every mutable field of an existing record. The id and
// position are kept.
func (s *RecordStore) Update(ctx context.Context, id domain.RecipeID, fields domain.RecipeFields) (domain.Recipe, error) {
	if err := fields.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Recipe{}, &domain.NotFoundError{ID: id}
	}

	recipe := domain.NewRecipe(id, fields)
	next := cloneRecords(s.records)
	next[i] = recipe
	if err := s.commit(ctx, next, s.nextID); err != nil {
		return domain.Recipe{}, err
	}

	logger.Debug("updated recipe %d", id)
	return recipe.Clone(), nil
}

// Delete removes a record. Deleting a missing id returns a NotFoundError.
func (s *RecordStore) Delete(ctx context.Context, id domain.RecipeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &domain.NotFoundError{ID: id}
	}

	next := make([]domain.Recipe, 0, len(s.records)-1)
	next = append(next, cloneRecords(s.records[:i])...)
	next = append(next, cloneRecords(s.records[i+1:])...)
	if err := s.commit(ctx, next, s.nextID); err != nil {
		return err
	}

	logger.Debug("deleted recipe %d", id)
	return nil
}

// Persist writes the current collection to storage.
func (s *RecordStore) Persist(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.writable(); err != nil {
		return err
	}
	return s.write(ctx, s.records, s.nextID)
}

// Revision changes whenever the collection changes.
func (s *RecordStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// commit persists next and installs it only if the write succeeded.
// Callers must hold the write lock.
func (s *RecordStore) commit(ctx context.Context, next []domain.Recipe, nextID domain.RecipeID) error {
	if err := s.writable(); err != nil {
		return err
	}
	if err := s.write(ctx, next, nextID); err != nil {
		return err
	}
	s.records = next
	s.nextID = nextID
	s.revision++
	return nil
}

// writable reports whether the collection may be written back.
// Callers must hold the lock.
func (s *RecordStore) writable() error {
	if s.readErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, s.readErr)
	}
	return nil
}

func (s *RecordStore) write(ctx context.Context, records []domain.Recipe, nextID domain.RecipeID) error {
	data, err := encodeSnapshot(records, nextID)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("persisting %q: %w", s.key, err)
	}
	return nil
}

func (s *RecordStore) indexOf(id domain.RecipeID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(in []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
