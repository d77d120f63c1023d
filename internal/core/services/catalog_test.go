package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/seed"
)

func newSeededCatalog(t *testing.T, inclusion domain.Inclusion) *CatalogService {
	t.Helper()
	store := NewRecordStore(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(context.Background()))
	return NewCatalogService(store, inclusion)
}

func TestNewCatalogService_InvalidInclusionDefaultsToAll(t *testing.T) {
	catalog := NewCatalogService(NewRecordStore(memory.NewKVStore(), nil), "spicy")

	assert.Equal(t, domain.InclusionAll, catalog.Inclusion())
}

func TestCatalogService_TagOptions(t *testing.T) {
	catalog := newSeededCatalog(t, domain.InclusionAll)

	tags, err := catalog.TagOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Comfort Food", "Festive", "Main", "Non-veg", "North Indian", "Protein-rich", "Rice",
	}, tags)
}

func TestCatalogService_TagOptions_Vegetarian(t *testing.T) {
	catalog := newSeededCatalog(t, domain.InclusionVegetarian)

	tags, err := catalog.TagOptions(context.Background())

	require.NoError(t, err)
	assert.NotContains(t, tags, "Non-veg")
	assert.Len(t, tags, 6)
}

func TestCatalogService_TagOptions_RecomputedAfterMutation(t *testing.T) {
	ctx := context.Background()
	catalog := newSeededCatalog(t, domain.InclusionAll)

	first, err := catalog.TagOptions(ctx)
	require.NoError(t, err)
	first[0] = "mutated"

	_, err = catalog.Create(ctx, validFields("Appam", "Breakfast"))
	require.NoError(t, err)

	tags, err := catalog.TagOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Breakfast", tags[0])
	assert.NotContains(t, tags, "mutated")

	require.NoError(t, catalog.Delete(ctx, 4))
	tags, err = catalog.TagOptions(ctx)
	require.NoError(t, err)
	assert.NotContains(t, tags, "Non-veg")
}

func TestCatalogService_Search(t *testing.T) {
	catalog := newSeededCatalog(t, domain.InclusionAll)

	results, err := catalog.Search(context.Background(), domain.Criteria{Text: "dal"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.RecipeID(3), results[0].ID)
}

func TestCatalogService_List_AppliesInclusion(t *testing.T) {
	ctx := context.Background()

	all, err := newSeededCatalog(t, domain.InclusionAll).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RecipeID{1, 2, 3, 4}, recipeIDs(all))

	veg, err := newSeededCatalog(t, domain.InclusionVegetarian).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RecipeID{1, 2, 3}, recipeIDs(veg))
}

func TestCatalogService_Get(t *testing.T) {
	catalog := newSeededCatalog(t, domain.InclusionVegetarian)

	r, err := catalog.Get(context.Background(), 4)
	require.NoError(t, err, "direct lookup ignores the inclusion predicate")
	assert.Equal(t, seed.MustRecipes()[3], *r)

	_, err = catalog.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Mutations(t *testing.T) {
	ctx := context.Background()
	catalog := newSeededCatalog(t, domain.InclusionAll)

	created, err := catalog.Create(ctx, validFields("Kesari"))
	require.NoError(t, err)
	assert.Equal(t, domain.RecipeID(5), created.ID)

	updated, err := catalog.Update(ctx, created.ID, validFields("Rava Kesari", "Sweet"))
	require.NoError(t, err)
	assert.Equal(t, "Rava Kesari", updated.Name.Get(domain.LocaleEnglish))

	_, err = catalog.Update(ctx, 999, validFields("X"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.Create(ctx, domain.RecipeFields{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, catalog.Delete(ctx, 2))
	list, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RecipeID{1, 3, 4, 5}, recipeIDs(list))

	assert.ErrorIs(t, catalog.Delete(ctx, 2), domain.ErrNotFound)
}
