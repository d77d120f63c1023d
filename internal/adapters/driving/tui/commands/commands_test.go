package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/services"
)

type stubClipboard struct {
	text string
	err  error
}

func (c *stubClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newCatalog(t *testing.T, inclusion domain.Inclusion) *services.CatalogService {
	t.Helper()
	store := services.NewRecordStore(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(context.Background()))
	return services.NewCatalogService(store, inclusion)
}

func newFields(name string) domain.RecipeFields {
	return domain.RecipeFields{
		Name:         domain.Text(name),
		Image:        "images/placeholder.jpg",
		Ingredients:  domain.LocalizedList{domain.LocaleEnglish: {"Rice"}},
		Instructions: domain.Text("Cook."),
		Vegetarian:   true,
	}
}

func TestLoadRecipes(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionVegetarian)

	msg := LoadRecipes(context.Background(), catalog, domain.Criteria{Text: "curry"})()

	loaded, ok := msg.(messages.RecipesLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Recipes, 2)
	assert.NotContains(t, loaded.Tags, "Non-veg")
}

func TestLoadRecipes_NoCatalog(t *testing.T) {
	msg := LoadRecipes(context.Background(), nil, domain.Criteria{})()

	assert.ErrorIs(t, msg.(messages.RecipesLoaded).Err, ErrNoCatalog)
}

func TestSaveRecipe_Create(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionAll)

	msg := SaveRecipe(context.Background(), catalog, 0, newFields("Lemon Rice"))()

	saved := msg.(messages.RecipeSaved)
	require.NoError(t, saved.Err)
	assert.True(t, saved.Created)
	assert.Equal(t, domain.RecipeID(5), saved.Recipe.ID)
}

func TestSaveRecipe_Update(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionAll)

	msg := SaveRecipe(context.Background(), catalog, 3, newFields("Plain Dal"))()

	saved := msg.(messages.RecipeSaved)
	require.NoError(t, saved.Err)
	assert.False(t, saved.Created)
	assert.Equal(t, "Plain Dal", saved.Recipe.Name.Get(domain.LocaleEnglish))
}

func TestSaveRecipe_ValidationError(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionAll)

	msg := SaveRecipe(context.Background(), catalog, 0, domain.RecipeFields{})()

	var verr *domain.ValidationError
	require.ErrorAs(t, msg.(messages.RecipeSaved).Err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestDeleteRecipe(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionAll)

	first := DeleteRecipe(context.Background(), catalog, 4)().(messages.RecipeDeleted)
	second := DeleteRecipe(context.Background(), catalog, 4)().(messages.RecipeDeleted)

	assert.NoError(t, first.Err)
	assert.Equal(t, domain.RecipeID(4), first.ID)
	assert.ErrorIs(t, second.Err, domain.ErrNotFound)
}

func TestCopyName(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionAll)
	clip := &stubClipboard{}
	actions := services.NewRecipeActionService(catalog, clip)

	msg := CopyName(context.Background(), actions, 2, domain.LocaleTamil)().(messages.NameCopied)

	require.NoError(t, msg.Err)
	assert.Equal(t, "காய்கறி பிரியாணி", msg.Name)
	assert.Equal(t, msg.Name, clip.text)
	assert.Equal(t, "Copied: காய்கறி பிரியாணி", CopyNotice(msg))
}

func TestCopyName_Failures(t *testing.T) {
	catalog := newCatalog(t, domain.InclusionAll)
	actions := services.NewRecipeActionService(catalog, &stubClipboard{err: errors.New("no display")})

	msg := CopyName(context.Background(), actions, 1, domain.LocaleEnglish)().(messages.NameCopied)
	assert.Error(t, msg.Err)
	assert.Equal(t, "Clipboard not available", CopyNotice(msg))

	msg = CopyName(context.Background(), nil, 1, domain.LocaleEnglish)().(messages.NameCopied)
	assert.ErrorIs(t, msg.Err, ErrNoClipboard)
}

func TestChangeView(t *testing.T) {
	assert.Equal(t, messages.ViewChanged{View: messages.ViewDetail}, ChangeView(messages.ViewDetail)())
}
