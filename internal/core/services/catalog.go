package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
	"github.com/custodia-labs/recipebook/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService is the adapter-facing boundary over a RecordStore and the
// query engine.
type CatalogService struct {
	store     *RecordStore
	inclusion domain.Inclusion

	tagMu       sync.Mutex
	tagRevision uint64
	tagCache    []string
}

// NewCatalogService creates a catalog over store. An invalid inclusion
// falls back to domain.InclusionAll.
func NewCatalogService(store *RecordStore, inclusion domain.Inclusion) *CatalogService {
	if !inclusion.IsValid() {
		inclusion = domain.InclusionAll
	}
	return &CatalogService{
		store:     store,
		inclusion: inclusion,
	}
}

// Inclusion returns the configured inclusion predicate.
func (s *CatalogService) Inclusion() domain.Inclusion {
	return s.inclusion
}

// TagOptions returns the sorted tag universe of the visible records.
// The result is cached until the store changes.
func (s *CatalogService) TagOptions(_ context.Context) ([]string, error) {
	s.tagMu.Lock()
	defer s.tagMu.Unlock()

	rev := s.store.Revision()
	if s.tagCache == nil || s.tagRevision != rev {
		s.tagCache = TagUniverse(s.store.List(), s.inclusion)
		s.tagRevision = rev
		logger.Debug("tag universe rebuilt at revision %d: %d tags", rev, len(s.tagCache))
	}

	out := make([]string, len(s.tagCache))
	copy(out, s.tagCache)
	return out, nil
}

// Search returns the visible records matching the criteria.
func (s *CatalogService) Search(_ context.Context, c domain.Criteria) ([]domain.Recipe, error) {
	logger.Debug("search text=%q tag=%q locale=%q locale_only=%t", c.Text, c.Tag, c.Locale, c.LocaleOnly)
	results := Query(s.store.List(), s.inclusion, c)
	logger.Debug("search matched %d recipes", len(results))
	return results, nil
}

// List returns every visible record in storage order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.Search(ctx, domain.Criteria{})
}

// Get returns a record by id. The inclusion predicate is not applied, so a
// record hidden from listings can still be opened directly.
func (s *CatalogService) Get(_ context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	r, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create adds a new record.
func (s *CatalogService) Create(ctx context.Context, fields domain.RecipeFields) (*domain.Recipe, error) {
	r, err := s.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Update replaces the mutable fields of an existing record.
func (s *CatalogService) Update(
	ctx context.Context, id domain.RecipeID, fields domain.RecipeFields,
) (*domain.Recipe, error) {
	r, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes a record.
func (s *CatalogService) Delete(ctx context.Context, id domain.RecipeID) error {
	return s.store.Delete(ctx, id)
}
