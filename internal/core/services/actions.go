package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driven"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
	"github.com/custodia-labs/recipebook/internal/logger"
)

// Ensure RecipeActionService implements the interface.
var _ driving.ActionService = (*RecipeActionService)(nil)

// ErrClipboardUnavailable is returned when no clipboard is configured.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// RecipeActionService provides side actions on recipes.
type RecipeActionService struct {
	catalog   driving.CatalogService
	clipboard driven.Clipboard
}

// NewRecipeActionService creates a new action service. clipboard may be nil,
// in which case CopyName reports ErrClipboardUnavailable.
func NewRecipeActionService(catalog driving.CatalogService, clipboard driven.Clipboard) *RecipeActionService {
	return &RecipeActionService{
		catalog:   catalog,
		clipboard: clipboard,
	}
}

// CopyName copies the recipe name, projected to locale, to the clipboard
// and returns the copied text.
func (s *RecipeActionService) CopyName(ctx context.Context, id domain.RecipeID, locale domain.Locale) (string, error) {
	recipe, err := s.catalog.Get(ctx, id)
	if err != nil {
		return "", err
	}

	name := recipe.Name.Get(locale)
	if s.clipboard == nil {
		return name, ErrClipboardUnavailable
	}
	if err := s.clipboard.WriteText(name); err != nil {
		logger.Warn("clipboard write failed: %v", err)
		return name, fmt.Errorf("copy to clipboard: %w", err)
	}

	logger.Debug("copied name of recipe %d (%s)", id, locale)
	return name, nil
}
