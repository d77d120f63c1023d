package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/services"
)

// failingCatalog is a driving.CatalogService whose every call fails.
type failingCatalog struct {
	err error
}

func (m *failingCatalog) TagOptions(_ context.Context) ([]string, error) {
	return nil, m.err
}

func (m *failingCatalog) Search(_ context.Context, _ domain.Criteria) ([]domain.Recipe, error) {
	return nil, m.err
}

func (m *failingCatalog) List(_ context.Context) ([]domain.Recipe, error) {
	return nil, m.err
}

func (m *failingCatalog) Get(_ context.Context, _ domain.RecipeID) (*domain.Recipe, error) {
	return nil, m.err
}

func (m *failingCatalog) Create(_ context.Context, _ domain.RecipeFields) (*domain.Recipe, error) {
	return nil, m.err
}

func (m *failingCatalog) Update(_ context.Context, _ domain.RecipeID, _ domain.RecipeFields) (*domain.Recipe, error) {
	return nil, m.err
}

func (m *failingCatalog) Delete(_ context.Context, _ domain.RecipeID) error {
	return m.err
}

func (m *failingCatalog) Inclusion() domain.Inclusion {
	return domain.InclusionAll
}

// newTestServer returns a server over the seeded in-memory catalog.
func newTestServer(t *testing.T, inclusion domain.Inclusion) (*Server, *services.CatalogService) {
	t.Helper()

	store := services.NewRecordStore(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(context.Background()))
	catalog := services.NewCatalogService(store, inclusion)

	server, err := NewServer(&Ports{Catalog: catalog})
	require.NoError(t, err)
	return server, catalog
}
