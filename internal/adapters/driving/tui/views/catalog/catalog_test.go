package catalog

import (
	"context"
	"errors"
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

type fixture struct {
	view    *View
	session *session.Session
	clip    *stubClipboard
}

func newFixture(t *testing.T, inclusion domain.Inclusion) *fixture {
	t.Helper()

	store := services.NewRecordStore(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(context.Background()))
	catalog := services.NewCatalogService(store, inclusion)
	clip := &stubClipboard{}
	sess := session.New(domain.LocaleEnglish)

	v := NewView(nil, nil, sess, catalog, services.NewRecipeActionService(catalog, clip))
	v.SetDimensions(120, 60)
	feed(v, v.Init())

	return &fixture{view: v, session: sess, clip: clip}
}

// feed runs cmd and hands its message back to the view.
func feed(v *View, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := v.Update(cmd())
	return next
}

func press(v *View, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := v.Update(msg)
	return cmd
}

func names(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for i := range recipes {
		out = append(out, recipes[i].Name.Get(domain.LocaleEnglish))
	}
	return out
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(nil, nil, nil, nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, "", v.Tag())
	assert.False(t, v.InputFocused())
	assert.Equal(t, "Initialising...", v.View())
}

func TestInit_LoadsVisibleRecipes(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	assert.Len(t, f.view.Recipes(), 4)
	assert.Equal(t,
		[]string{"Comfort Food", "Festive", "Main", "Non-veg", "North Indian", "Protein-rich", "Rice"},
		f.view.Tags())
	assert.NoError(t, f.view.Err())
}

func TestInit_VegetarianHidesNonVeg(t *testing.T) {
	f := newFixture(t, domain.InclusionVegetarian)

	assert.Len(t, f.view.Recipes(), 3)
	assert.NotContains(t, f.view.Tags(), "Non-veg")
	assert.NotContains(t, names(f.view.Recipes()), "Chicken Curry")
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	press(f.view, "/")
	require.True(t, f.view.InputFocused())
	for _, r := range "DAL" {
		press(f.view, string(r))
	}
	assert.Equal(t, "DAL", f.view.Query())

	feed(f.view, f.view.Refresh())

	assert.Equal(t, []string{"Masoor Dal (Red Lentil Curry)"}, names(f.view.Recipes()))
}

func TestSearch_EscLeavesInput(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)
	press(f.view, "/")

	cmd := press(f.view, "esc")

	assert.Nil(t, cmd)
	assert.False(t, f.view.InputFocused())
}

func TestSearch_EmptyStateMessage(t *testing.T) {
	f := newFixture(t, domain.InclusionVegetarian)
	f.view.SetQuery("zzz")

	feed(f.view, f.view.Refresh())

	assert.Empty(t, f.view.Recipes())
	assert.Contains(t, f.view.View(), "No vegetarian recipes found.")
}

func TestTagFilter_Cycles(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	feed(f.view, press(f.view, "t"))
	assert.Equal(t, "Comfort Food", f.view.Tag())
	assert.Equal(t, []string{"Masoor Dal (Red Lentil Curry)"}, names(f.view.Recipes()))
	assert.Contains(t, f.view.View(), "(1/7)")

	feed(f.view, press(f.view, "T"))
	assert.Equal(t, "", f.view.Tag())
	assert.Len(t, f.view.Recipes(), 4)

	feed(f.view, press(f.view, "T"))
	assert.Equal(t, "Rice", f.view.Tag())
	assert.Equal(t, []string{"Vegetable Biryani"}, names(f.view.Recipes()))
}

func TestTagFilter_CombinesWithText(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)
	f.view.SetQuery("curry")

	feed(f.view, press(f.view, "t"))

	assert.Equal(t, "Comfort Food", f.view.Criteria().Tag)
	assert.Equal(t, "curry", f.view.Criteria().Text)
	assert.Len(t, f.view.Recipes(), 1)
}

func TestSelect_OpensDetail(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)
	press(f.view, "down")

	cmd := press(f.view, "enter")

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.RecipeSelected)
	require.True(t, ok)
	assert.Equal(t, domain.RecipeID(2), selected.Recipe.ID)
}

func TestNewAndEdit_RequestEditor(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	assert.Equal(t, messages.EditRequested{}, press(f.view, "n")())
	assert.Equal(t, messages.EditRequested{ID: 1}, press(f.view, "e")())
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	assert.Nil(t, press(f.view, "d"))
	assert.True(t, f.view.ConfirmingDelete())
	assert.Contains(t, f.view.StatusMessage(), "Paneer Butter Masala")

	assert.Nil(t, press(f.view, "n"))
	assert.False(t, f.view.ConfirmingDelete())
	assert.Len(t, f.view.Recipes(), 4)

	press(f.view, "d")
	next := feed(f.view, press(f.view, "y"))
	require.NotNil(t, next)
	feed(f.view, next)

	assert.Len(t, f.view.Recipes(), 3)
	assert.NotContains(t, names(f.view.Recipes()), "Paneer Butter Masala")
	assert.Equal(t, "Recipe deleted", f.view.StatusMessage())
}

func TestDelete_DropsVanishedTagFilter(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)
	for f.view.Tag() != "Non-veg" {
		feed(f.view, press(f.view, "t"))
	}
	require.Equal(t, []string{"Chicken Curry"}, names(f.view.Recipes()))

	press(f.view, "d")
	feed(f.view, feed(f.view, press(f.view, "y")))

	assert.Equal(t, "", f.view.Tag())
	assert.NotContains(t, f.view.Tags(), "Non-veg")
}

func TestCopy_ReportsCopiedName(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	feed(f.view, press(f.view, "c"))

	assert.Equal(t, "Paneer Butter Masala", f.clip.text)
	assert.Equal(t, "Copied: Paneer Butter Masala", f.view.StatusMessage())
}

func TestLocaleToggle_ProjectsNames(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	feed(f.view, press(f.view, "l"))

	assert.Equal(t, domain.LocaleTamil, f.session.Locale())
	assert.Contains(t, f.view.View(), "பனீர் பட்டர் மசாலா")
}

func TestEsc_ReturnsToMenu(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	cmd := press(f.view, "esc")

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestLoadError_IsShown(t *testing.T) {
	f := newFixture(t, domain.InclusionAll)

	f.view.Update(messages.RecipesLoaded{Err: errors.New("storage offline")})

	assert.EqualError(t, f.view.Err(), "storage offline")
	assert.Contains(t, f.view.View(), "storage offline")
	assert.Len(t, f.view.Recipes(), 4, "previous results stay listed")
}
