package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// resolveLocale returns the --locale value, or the configured display
// locale when the flag is empty.
func resolveLocale(flag string) domain.Locale {
	if l := strings.TrimSpace(flag); l != "" {
		return domain.Locale(l)
	}
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil && s.Display.Locale != "" {
			return s.Display.Locale
		}
	}
	return domain.DefaultLocale
}

// emptyMessage is printed when a query matches nothing.
func emptyMessage() string {
	if catalogService != nil && catalogService.Inclusion() == domain.InclusionVegetarian {
		return "No vegetarian recipes found."
	}
	return "No recipes found."
}

func parseID(arg string) (domain.RecipeID, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid recipe id %q", domain.ErrInvalidInput, arg)
	}
	return domain.RecipeID(id), nil
}

func project(recipes []domain.Recipe, locale domain.Locale) []domain.RecipeView {
	views := make([]domain.RecipeView, len(recipes))
	for i := range recipes {
		views[i] = recipes[i].Project(locale)
	}
	return views
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}

func heading(v *domain.RecipeView) string {
	if v.Vegetarian {
		return fmt.Sprintf("[%d] %s (vegetarian)", v.ID, v.Name)
	}
	return fmt.Sprintf("[%d] %s", v.ID, v.Name)
}

// printRecipes writes a short entry per recipe followed by a count.
func printRecipes(w io.Writer, views []domain.RecipeView) {
	if len(views) == 0 {
		fmt.Fprintln(w, emptyMessage())
		return
	}

	for i := range views {
		v := &views[i]
		fmt.Fprintln(w, heading(v))
		if len(v.Tags) > 0 {
			fmt.Fprintf(w, "    Tags: %s\n", strings.Join(v.Tags, ", "))
		}
		if v.Description != "" {
			fmt.Fprintf(w, "    %s\n", v.Description)
		}
		fmt.Fprintln(w)
	}

	if len(views) == 1 {
		fmt.Fprintln(w, "1 recipe")
	} else {
		fmt.Fprintf(w, "%d recipes\n", len(views))
	}
}

// printRecipe writes the full detail of one recipe.
func printRecipe(w io.Writer, v *domain.RecipeView) {
	fmt.Fprintln(w, heading(v))
	fmt.Fprintf(w, "Image: %s\n", v.Image)
	if len(v.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(v.Tags, ", "))
	}
	if v.Description != "" {
		fmt.Fprintf(w, "\n%s\n", v.Description)
	}

	fmt.Fprintln(w, "\nIngredients:")
	for _, item := range v.Ingredients {
		fmt.Fprintf(w, "  - %s\n", item)
	}

	fmt.Fprintln(w, "\nInstructions:")
	fmt.Fprintf(w, "  %s\n", v.Instructions)

	if len(v.Benefits) > 0 {
		fmt.Fprintln(w, "\nBenefits:")
		for _, b := range v.Benefits {
			fmt.Fprintf(w, "  - %s\n", b)
		}
	}
}
