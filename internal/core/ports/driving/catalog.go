package driving

import (
	"context"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// CatalogService is the boundary presentation adapters use to query and
// mutate the recipe collection. Adapters never touch storage directly.
type CatalogService interface {
	// TagOptions returns the sorted, deduplicated tags of visible recipes.
	TagOptions(ctx context.Context) ([]string, error)

	// Search returns visible recipes matching the criteria, in store order.
	// An empty result is not an error.
	Search(ctx context.Context, criteria domain.Criteria) ([]domain.Recipe, error)

	// List returns every visible recipe in store order.
	List(ctx context.Context) ([]domain.Recipe, error)

	// Get retrieves a recipe by ID.
	// Returns a *domain.NotFoundError if it does not exist.
	Get(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error)

	// Create validates and stores a new recipe with the next free ID.
	Create(ctx context.Context, fields domain.RecipeFields) (*domain.Recipe, error)

	// Update replaces the mutable fields of an existing recipe.
	Update(ctx context.Context, id domain.RecipeID, fields domain.RecipeFields) (*domain.Recipe, error)

	// Delete removes a recipe. Deleting twice fails with NotFoundError.
	Delete(ctx context.Context, id domain.RecipeID) error

	// Inclusion returns the base visibility predicate in effect.
	Inclusion() domain.Inclusion
}
