// Package commands builds the tea.Cmds that call the core services.
// Each command runs off the UI goroutine and reports back with a message.
package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// ErrNoCatalog is reported when a view has no catalog service.
var ErrNoCatalog = errors.New("catalog service is required")

// ErrNoClipboard is reported when copying without an action service.
var ErrNoClipboard = errors.New("clipboard not available")

// LoadRecipes runs a catalog query and fetches the tag options with it.
func LoadRecipes(ctx context.Context, catalog driving.CatalogService, c domain.Criteria) tea.Cmd {
	return func() tea.Msg {
		if catalog == nil {
			return messages.RecipesLoaded{Err: ErrNoCatalog}
		}
		recipes, err := catalog.Search(ctx, c)
		if err != nil {
			return messages.RecipesLoaded{Err: err}
		}
		tags, err := catalog.TagOptions(ctx)
		if err != nil {
			return messages.RecipesLoaded{Err: err}
		}
		return messages.RecipesLoaded{Recipes: recipes, Tags: tags}
	}
}

// SaveRecipe updates the recipe with the given id, or creates one when id
// is zero.
func SaveRecipe(
	ctx context.Context, catalog driving.CatalogService, id domain.RecipeID, fields domain.RecipeFields,
) tea.Cmd {
	return func() tea.Msg {
		if catalog == nil {
			return messages.RecipeSaved{Err: ErrNoCatalog}
		}

		var (
			recipe *domain.Recipe
			err    error
		)
		if id == 0 {
			recipe, err = catalog.Create(ctx, fields)
		} else {
			recipe, err = catalog.Update(ctx, id, fields)
		}
		if err != nil {
			return messages.RecipeSaved{Created: id == 0, Err: err}
		}
		return messages.RecipeSaved{Recipe: *recipe, Created: id == 0}
	}
}

// DeleteRecipe removes a recipe.
func DeleteRecipe(ctx context.Context, catalog driving.CatalogService, id domain.RecipeID) tea.Cmd {
	return func() tea.Msg {
		if catalog == nil {
			return messages.RecipeDeleted{ID: id, Err: ErrNoCatalog}
		}
		return messages.RecipeDeleted{ID: id, Err: catalog.Delete(ctx, id)}
	}
}

// CopyName copies the recipe name in locale to the clipboard.
func CopyName(
	ctx context.Context, actions driving.ActionService, id domain.RecipeID, locale domain.Locale,
) tea.Cmd {
	return func() tea.Msg {
		if actions == nil {
			return messages.NameCopied{Err: ErrNoClipboard}
		}
		name, err := actions.CopyName(ctx, id, locale)
		return messages.NameCopied{Name: name, Err: err}
	}
}

// CopyNotice formats the outcome of a copy for the status bar.
func CopyNotice(msg messages.NameCopied) string {
	if msg.Err != nil {
		return "Clipboard not available"
	}
	return "Copied: " + msg.Name
}

// ChangeView switches to another view.
func ChangeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}
