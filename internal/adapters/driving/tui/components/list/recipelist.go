// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// DefaultEmptyMessage is shown when nothing matches.
const DefaultEmptyMessage = "No recipes found."

// linesPerRecipe is the rendered height of one entry.
const linesPerRecipe = 2

// RecipeList displays recipes as a navigable list projected to a locale.
type RecipeList struct {
	recipes  []domain.Recipe
	selected int
	locale   domain.Locale
	empty    string
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecipeList creates a new recipe list component.
func NewRecipeList(s *styles.Styles) *RecipeList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecipeList{
		locale: domain.DefaultLocale,
		empty:  DefaultEmptyMessage,
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (r *RecipeList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecipeList) Update(msg tea.Msg) (*RecipeList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.recipes) > 0 {
				r.selected = len(r.recipes) - 1
			}
		}
	}
	return r, nil
}

// View renders the list.
func (r *RecipeList) View() string {
	if len(r.recipes) == 0 {
		return r.styles.Muted.Render(r.empty)
	}

	lines := make([]string, 0, len(r.recipes)*linesPerRecipe+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Recipes (%d)", len(r.recipes))), "")

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecipe(i, &r.recipes[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *RecipeList) visibleRange() (start, end int) {
	visible := (r.height - 2) / linesPerRecipe
	if visible < 1 {
		visible = 1
	}
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end = start + visible
	if end > len(r.recipes) {
		end = len(r.recipes)
	}
	return start, end
}

func (r *RecipeList) renderRecipe(index int, recipe *domain.Recipe) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := truncate(recipe.Name.Get(r.locale), r.width-12)
	if name == "" {
		name = "(Unnamed)"
	}

	var nameLine string
	if index == r.selected {
		nameLine = r.styles.Selected.Render(indicator + name)
	} else {
		nameLine = r.styles.Normal.Render(indicator + name)
	}
	if recipe.Vegetarian {
		nameLine += " " + r.styles.Veg.Render("●")
	}

	tags := strings.Join(recipe.SortedTags(), " · ")
	if tags == "" {
		tags = recipe.Description.Get(r.locale)
	}
	return nameLine + "\n" + r.styles.Tag.Render("    "+truncate(tags, r.width-6))
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetRecipes replaces the list contents. The selection is kept on the same
// recipe id when it is still present.
func (r *RecipeList) SetRecipes(recipes []domain.Recipe) {
	var keep domain.RecipeID
	if cur := r.SelectedRecipe(); cur != nil {
		keep = cur.ID
	}

	r.recipes = recipes
	r.selected = 0
	for i := range recipes {
		if recipes[i].ID == keep {
			r.selected = i
			break
		}
	}
}

// Recipes returns the current recipes.
func (r *RecipeList) Recipes() []domain.Recipe {
	return r.recipes
}

// SetLocale sets the locale names are projected to.
func (r *RecipeList) SetLocale(locale domain.Locale) {
	r.locale = locale
}

// SetEmptyMessage sets the text shown for an empty list.
func (r *RecipeList) SetEmptyMessage(msg string) {
	r.empty = msg
}

// Selected returns the index of the selected recipe.
func (r *RecipeList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecipeList) SetSelected(index int) {
	if index >= 0 && index < len(r.recipes) {
		r.selected = index
	}
}

// SelectedRecipe returns the selected recipe, or nil if the list is empty.
func (r *RecipeList) SelectedRecipe() *domain.Recipe {
	if r.selected < 0 || r.selected >= len(r.recipes) {
		return nil
	}
	return &r.recipes[r.selected]
}

// MoveUp moves selection up.
func (r *RecipeList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecipeList) MoveDown() {
	if r.selected < len(r.recipes)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecipeList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of recipes.
func (r *RecipeList) Count() int {
	return len(r.recipes)
}

// IsEmpty returns whether the list is empty.
func (r *RecipeList) IsEmpty() bool {
	return len(r.recipes) == 0
}
