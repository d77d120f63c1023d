// Package seed provides the built-in recipe set used to initialise an
// empty or unreadable catalog.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

//go:embed recipes.yaml
var recipesYAML []byte

// Recipes decodes the embedded seed set. Each call returns fresh copies.
func Recipes() ([]domain.Recipe, error) {
	return Parse(recipesYAML)
}

// MustRecipes is like Recipes but panics if the embedded data is invalid.
func MustRecipes() []domain.Recipe {
	recipes, err := Recipes()
	if err != nil {
		panic(err)
	}
	return recipes
}

// Parse decodes a YAML list of recipes and normalises each entry.
// IDs must be positive and unique.
func Parse(data []byte) ([]domain.Recipe, error) {
	var raw []domain.Recipe
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing seed recipes: %w", err)
	}

	seen := make(map[domain.RecipeID]struct{}, len(raw))
	out := make([]domain.Recipe, 0, len(raw))
	for i := range raw {
		id := raw[i].ID
		if id <= 0 {
			return nil, fmt.Errorf("seed recipe %d: id must be positive", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("seed recipe %d: duplicate id %d", i, id)
		}
		seen[id] = struct{}{}
		out = append(out, domain.NewRecipe(id, raw[i].Fields()))
	}
	return out, nil
}
