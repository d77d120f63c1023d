// Package catalog provides the recipe list view: a search box, a tag
// filter and the matching recipes.
package catalog

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/commands"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// View is the recipe list with its search and tag filter.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RecipeList
	statusbar *status.Bar

	catalog driving.CatalogService
	actions driving.ActionService
	session *session.Session
	ctx     context.Context

	tags     []string
	tagIndex int // -1 means no tag filter

	pendingDelete *domain.Recipe

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new catalog view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	sess *session.Session,
	catalog driving.CatalogService,
	actions driving.ActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if sess == nil {
		sess = session.New(domain.DefaultLocale)
	}

	l := list.NewRecipeList(s)
	l.SetLocale(sess.Locale())
	if catalog != nil && catalog.Inclusion() == domain.InclusionVegetarian {
		l.SetEmptyMessage("No vegetarian recipes found.")
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      l,
		statusbar: status.NewBar(s, km.CatalogHelp()),
		catalog:   catalog,
		actions:   actions,
		session:   sess,
		ctx:       context.Background(),
		tagIndex:  -1,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the recipes for the current filter.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return v.Refresh()
}

// Refresh re-runs the query with the current search text and tag.
func (v *View) Refresh() tea.Cmd {
	return commands.LoadRecipes(v.ctx, v.catalog, v.Criteria())
}

// Criteria returns the query for the current filter state.
func (v *View) Criteria() domain.Criteria {
	return domain.Criteria{
		Text:   v.input.Query(),
		Tag:    v.Tag(),
		Locale: v.session.Locale(),
	}
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecipesLoaded:
		v.handleLoaded(msg)
		return v, nil

	case messages.RecipeDeleted:
		if msg.Err != nil {
			v.statusbar.SetMessage(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetMessage(status.StateNotice, "Recipe deleted")
		return v, v.Refresh()

	case messages.NameCopied:
		state := status.StateNotice
		if msg.Err != nil {
			state = status.StateError
		}
		v.statusbar.SetMessage(state, commands.CopyNotice(msg))
		return v, nil

	case messages.LocaleToggled:
		v.SyncLocale()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetMessage(status.StateError, msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pendingDelete != nil {
		return v.handleConfirmKey(msg)
	}
	if v.input.Focused() {
		return v.handleInputKey(msg)
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, commands.ChangeView(messages.ViewMenu)

	case keymap.Matches(key, v.keymap.Search):
		return v, v.input.Focus()

	case keymap.Matches(key, v.keymap.NextTag):
		v.cycleTag(1)
		return v, v.Refresh()

	case keymap.Matches(key, v.keymap.PrevTag):
		v.cycleTag(-1)
		return v, v.Refresh()

	case keymap.Matches(key, v.keymap.Select):
		if r := v.list.SelectedRecipe(); r != nil {
			recipe := r.Clone()
			return v, func() tea.Msg { return messages.RecipeSelected{Recipe: recipe} }
		}
		return v, nil

	case keymap.Matches(key, v.keymap.New):
		return v, func() tea.Msg { return messages.EditRequested{} }

	case keymap.Matches(key, v.keymap.Edit):
		if r := v.list.SelectedRecipe(); r != nil {
			id := r.ID
			return v, func() tea.Msg { return messages.EditRequested{ID: id} }
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Delete):
		if r := v.list.SelectedRecipe(); r != nil {
			recipe := r.Clone()
			v.pendingDelete = &recipe
			v.statusbar.SetMessage(status.StateConfirm,
				fmt.Sprintf("Delete %q? [y/N]", recipe.Name.Get(v.session.Locale())))
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Copy):
		if r := v.list.SelectedRecipe(); r != nil {
			return v, commands.CopyName(v.ctx, v.actions, r.ID, v.session.Locale())
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Locale):
		locale := v.session.ToggleLocale()
		return v, func() tea.Msg { return messages.LocaleToggled{Locale: locale} }
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// handleInputKey types into the search box and re-runs the query on every
// change.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyDown, tea.KeyTab:
		v.input.Blur()
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.Refresh())
}

func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	recipe := v.pendingDelete
	v.pendingDelete = nil

	if keymap.Matches(msg.String(), v.keymap.Confirm) {
		return v, commands.DeleteRecipe(v.ctx, v.catalog, recipe.ID)
	}
	v.statusbar.Clear()
	return v, nil
}

// cycleTag steps through "all tags" followed by each tag option.
func (v *View) cycleTag(step int) {
	n := len(v.tags) + 1
	v.tagIndex = ((v.tagIndex+1+step)%n+n)%n - 1
}

func (v *View) handleLoaded(msg messages.RecipesLoaded) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetMessage(status.StateError, msg.Err.Error())
		return
	}

	v.err = nil
	current := v.Tag()
	v.tags = msg.Tags
	v.tagIndex = -1
	for i, t := range v.tags {
		if t == current {
			v.tagIndex = i
			break
		}
	}

	v.list.SetRecipes(msg.Recipes)
	v.statusbar.SetCount(len(msg.Recipes))
	v.statusbar.SetFilter(v.Tag(), v.session.Locale())
	if st := v.statusbar.State(); st == status.StateLoading || st == status.StateError {
		v.statusbar.Clear()
	}
}

// SyncLocale re-renders names in the session locale.
func (v *View) SyncLocale() {
	v.list.SetLocale(v.session.Locale())
	v.statusbar.SetFilter(v.Tag(), v.session.Locale())
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("Recipe Book"), "",
		v.input.View(),
		v.renderTagFilter(), "",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTagFilter() string {
	label := v.styles.Muted.Render("Tag: ")
	if v.tagIndex < 0 {
		return label + v.styles.Normal.Render("All tags")
	}
	return label + v.styles.Tag.Render(v.tags[v.tagIndex]) +
		v.styles.Muted.Render(fmt.Sprintf("  (%d/%d)", v.tagIndex+1, len(v.tags)))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Tag returns the active tag filter, or "" for all tags.
func (v *View) Tag() string {
	if v.tagIndex < 0 || v.tagIndex >= len(v.tags) {
		return ""
	}
	return v.tags[v.tagIndex]
}

// Tags returns the tag options.
func (v *View) Tags() []string {
	return v.tags
}

// Query returns the search text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Recipes returns the listed recipes.
func (v *View) Recipes() []domain.Recipe {
	return v.list.Recipes()
}

// SelectedRecipe returns the highlighted recipe.
func (v *View) SelectedRecipe() *domain.Recipe {
	return v.list.SelectedRecipe()
}

// InputFocused returns whether the search box has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// ConfirmingDelete reports whether a delete is awaiting confirmation.
func (v *View) ConfirmingDelete() bool {
	return v.pendingDelete != nil
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
