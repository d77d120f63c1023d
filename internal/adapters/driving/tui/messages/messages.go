// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCatalog is the recipe list with search and tag filter.
	ViewCatalog
	// ViewDetail shows a single recipe.
	ViewDetail
	// ViewEditor is the create/edit form.
	ViewEditor
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCatalog:
		return "catalog"
	case ViewDetail:
		return "detail"
	case ViewEditor:
		return "editor"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// RecipesLoaded carries the result of a catalog query and the current tag
// options.
type RecipesLoaded struct {
	Recipes []domain.Recipe
	Tags    []string
	Err     error
}

// RecipeSelected opens the detail view for a recipe.
type RecipeSelected struct {
	Recipe domain.Recipe
}

// EditRequested opens the editor. A zero ID starts a new recipe.
type EditRequested struct {
	ID domain.RecipeID
}

// RecipeSaved signals a create or update finished.
type RecipeSaved struct {
	Recipe  domain.Recipe
	Created bool
	Err     error
}

// RecipeDeleted signals a delete finished.
type RecipeDeleted struct {
	ID  domain.RecipeID
	Err error
}

// NameCopied reports the outcome of a clipboard copy.
type NameCopied struct {
	Name string
	Err  error
}

// LocaleToggled signals the session locale changed.
type LocaleToggled struct {
	Locale domain.Locale
}

// ConfigChanged signals the config file was reloaded from disk.
type ConfigChanged struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
