package driving

import (
	"context"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// ActionService provides side actions on recipes for external actors.
// This is used by TUI, CLI, and MCP adapters.
type ActionService interface {
	// CopyName copies the recipe name in the given locale to the clipboard.
	CopyName(ctx context.Context, id domain.RecipeID, locale domain.Locale) (string, error)
}
