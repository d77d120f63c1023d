package detail

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/services"
)

type stubClipboard struct{ text string }

func (c *stubClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

func newDetail(t *testing.T, id domain.RecipeID) (*View, *services.CatalogService, *session.Session) {
	t.Helper()

	store := services.NewRecordStore(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(context.Background()))
	catalog := services.NewCatalogService(store, domain.InclusionAll)
	sess := session.New(domain.LocaleEnglish)

	v := NewView(nil, nil, sess, catalog, services.NewRecipeActionService(catalog, &stubClipboard{}))
	v.SetDimensions(120, 80)

	recipe, err := catalog.Get(context.Background(), id)
	require.NoError(t, err)
	v.SetRecipe(*recipe)
	return v, catalog, sess
}

func press(v *View, key string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	}
	_, cmd := v.Update(msg)
	return cmd
}

func TestNewView_NoRecipe(t *testing.T) {
	v := NewView(nil, nil, nil, nil, nil)

	assert.Equal(t, "Initialising...", v.View())
	v.SetDimensions(80, 24)
	assert.Contains(t, v.View(), "No recipe selected")
	assert.Nil(t, v.Init())
	assert.Nil(t, press(v, "e"), "actions need a recipe")
}

func TestView_RendersAllSections(t *testing.T) {
	v, _, _ := newDetail(t, 3)

	out := v.View()

	assert.Contains(t, out, "Masoor Dal (Red Lentil Curry)")
	assert.Contains(t, out, "Vegetarian")
	assert.Contains(t, out, "#Comfort Food")
	assert.Contains(t, out, "#Protein-rich")
	assert.Contains(t, out, "Ingredients")
	assert.Contains(t, out, "• Red lentils")
	assert.Contains(t, out, "Instructions")
	assert.Contains(t, out, "Benefits")
}

func TestView_NonVegetarianHasNoMarker(t *testing.T) {
	v, _, _ := newDetail(t, 4)

	assert.NotContains(t, v.View(), "● Vegetarian")
}

func TestLocaleToggle_ProjectsFields(t *testing.T) {
	v, _, sess := newDetail(t, 3)

	cmd := press(v, "l")

	require.NotNil(t, cmd)
	assert.Equal(t, messages.LocaleToggled{Locale: domain.LocaleTamil}, cmd())
	assert.Equal(t, domain.LocaleTamil, sess.Locale())
	out := v.View()
	assert.Contains(t, out, "மசூர் பருப்பு")
	assert.Contains(t, out, "• சிவப்பு பருப்பு")
}

func TestCopy_UsesSessionLocale(t *testing.T) {
	v, _, sess := newDetail(t, 2)
	sess.ToggleLocale()

	cmd := press(v, "c")
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Equal(t, "Copied: காய்கறி பிரியாணி", v.StatusMessage())
}

func TestEdit_RequestsEditor(t *testing.T) {
	v, _, _ := newDetail(t, 2)

	cmd := press(v, "e")

	require.NotNil(t, cmd)
	assert.Equal(t, messages.EditRequested{ID: 2}, cmd())
}

func TestDelete_ConfirmedReturnsToCatalog(t *testing.T) {
	v, catalog, _ := newDetail(t, 4)

	assert.Nil(t, press(v, "d"))
	require.True(t, v.ConfirmingDelete())
	assert.Contains(t, v.StatusMessage(), "Chicken Curry")

	cmd := press(v, "y")
	require.NotNil(t, cmd)
	_, next := v.Update(cmd())

	require.NotNil(t, next)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewCatalog}, next())
	assert.Nil(t, v.Recipe())
	_, err := catalog.Get(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Cancelled(t *testing.T) {
	v, catalog, _ := newDetail(t, 4)

	press(v, "d")
	assert.Nil(t, press(v, "x"))

	assert.False(t, v.ConfirmingDelete())
	_, err := catalog.Get(context.Background(), 4)
	assert.NoError(t, err)
}

func TestDelete_ErrorStaysOnView(t *testing.T) {
	v, _, _ := newDetail(t, 4)

	_, cmd := v.Update(messages.RecipeDeleted{ID: 4, Err: &domain.NotFoundError{ID: 4}})

	assert.Nil(t, cmd)
	assert.NotNil(t, v.Recipe())
	assert.Equal(t, "recipe 4 not found", v.StatusMessage())
}

func TestEsc_ReturnsToCatalog(t *testing.T) {
	v, _, _ := newDetail(t, 1)

	cmd := press(v, "esc")

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewCatalog}, cmd())
}

func TestScroll_ClampedToContent(t *testing.T) {
	v, _, _ := newDetail(t, 1)
	v.SetDimensions(60, 12)

	press(v, "up")
	assert.Equal(t, 0, v.ScrollOffset())

	for i := 0; i < 100; i++ {
		press(v, "down")
	}
	assert.Equal(t, len(v.Lines())-4, v.ScrollOffset())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"longerthanwidth"}, wrap("longerthanwidth", 5))
}
