// Package detail provides the recipe detail view, shown as a modal over
// the catalog.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/commands"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// View shows one recipe projected to the session locale.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	catalog driving.CatalogService
	actions driving.ActionService
	session *session.Session
	ctx     context.Context

	recipe        *domain.Recipe
	confirmDelete bool
	scrollOffset  int

	width  int
	height int
	ready  bool
}

// NewView creates a new detail view.
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

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km.DetailHelp()),
		catalog:   catalog,
		actions:   actions,
		session:   sess,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetRecipe sets the recipe to display.
func (v *View) SetRecipe(recipe domain.Recipe) {
	r := recipe.Clone()
	v.recipe = &r
	v.confirmDelete = false
	v.scrollOffset = 0
	v.statusbar.Clear()
}

// Recipe returns the displayed recipe.
func (v *View) Recipe() *domain.Recipe {
	return v.recipe
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.NameCopied:
		state := status.StateNotice
		if msg.Err != nil {
			state = status.StateError
		}
		v.statusbar.SetMessage(state, commands.CopyNotice(msg))
		return v, nil

	case messages.RecipeDeleted:
		if msg.Err != nil {
			v.statusbar.SetMessage(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.recipe = nil
		return v, commands.ChangeView(messages.ViewCatalog)

	case messages.ErrorOccurred:
		v.statusbar.SetMessage(status.StateError, msg.Err.Error())
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.confirmDelete {
		v.confirmDelete = false
		if keymap.Matches(key, v.keymap.Confirm) && v.recipe != nil {
			return v, commands.DeleteRecipe(v.ctx, v.catalog, v.recipe.ID)
		}
		v.statusbar.Clear()
		return v, nil
	}

	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, commands.ChangeView(messages.ViewCatalog)

	case keymap.Matches(key, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}

	case keymap.Matches(key, v.keymap.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}

	case v.recipe == nil:
		return v, nil

	case keymap.Matches(key, v.keymap.Locale):
		locale := v.session.ToggleLocale()
		return v, func() tea.Msg { return messages.LocaleToggled{Locale: locale} }

	case keymap.Matches(key, v.keymap.Copy):
		return v, commands.CopyName(v.ctx, v.actions, v.recipe.ID, v.session.Locale())

	case keymap.Matches(key, v.keymap.Edit):
		id := v.recipe.ID
		return v, func() tea.Msg { return messages.EditRequested{ID: id} }

	case keymap.Matches(key, v.keymap.Delete):
		v.confirmDelete = true
		v.statusbar.SetMessage(status.StateConfirm,
			fmt.Sprintf("Delete %q? [y/N]", v.recipe.Name.Get(v.session.Locale())))
	}

	return v, nil
}

// Lines returns the rendered body of the recipe, one entry per line.
func (v *View) Lines() []string {
	if v.recipe == nil {
		return nil
	}

	p := v.recipe.Project(v.session.Locale())
	lines := make([]string, 0, 16+len(p.Ingredients)+len(p.Benefits))

	if p.Description != "" {
		lines = append(lines, v.styles.Normal.Render(p.Description), "")
	}
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, v.styles.Tag.Render("#"+t))
		}
		lines = append(lines, strings.Join(tags, " "))
	}
	lines = append(lines, v.styles.Muted.Render("Image: "+p.Image), "")

	lines = append(lines, v.styles.Subtitle.Render("Ingredients"))
	for _, item := range p.Ingredients {
		lines = append(lines, "  • "+item)
	}
	lines = append(lines, "", v.styles.Subtitle.Render("Instructions"))
	lines = append(lines, wrap(p.Instructions, v.textWidth())...)

	if len(p.Benefits) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Benefits"))
		for _, b := range p.Benefits {
			lines = append(lines, "  • "+b)
		}
	}
	return lines
}

func (v *View) textWidth() int {
	w := v.width - 10
	if w < 20 {
		w = 20
	}
	return w
}

func (v *View) visibleLines() int {
	available := v.height - 8
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.Lines()) - v.visibleLines()
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// View renders the detail modal.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.recipe == nil {
		return v.styles.Muted.Render("No recipe selected") + "\n\n" + v.styles.Help.Render("[esc] Back")
	}

	locale := v.session.Locale()
	title := v.styles.Title.Render(v.recipe.Name.Get(locale))
	if v.recipe.Vegetarian {
		title += "  " + v.styles.Veg.Render("● Vegetarian")
	}
	title += "  " + v.styles.Muted.Render("["+locale.Description()+"]")

	lines := v.Lines()
	end := v.scrollOffset + v.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[v.scrollOffset:end], "\n")

	modal := v.styles.Modal.Width(v.textWidth() + 4).Render(title + "\n\n" + body)
	return lipgloss.JoinVertical(lipgloss.Left, modal, "", v.statusbar.View())
}

// wrap breaks text into lines no wider than width, on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// ConfirmingDelete reports whether a delete is awaiting confirmation.
func (v *View) ConfirmingDelete() bool {
	return v.confirmDelete
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// ScrollOffset returns the first visible body line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
