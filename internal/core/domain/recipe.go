package domain

import (
	"sort"
	"strings"
)

// RecipeID identifies a recipe within a store.
// IDs are assigned at creation and never reused after deletion.
type RecipeID int

// Recipe is a single catalog entry with locale-mapped display fields.
type Recipe struct {
	// ID is the stable identifier assigned by the record store.
	ID RecipeID `json:"id" yaml:"id"`

	// Name is the display name per locale. At least one locale is present.
	Name LocalizedText `json:"name" yaml:"name"`

	// Image is a URI for the recipe picture. May be a placeholder.
	Image string `json:"image" yaml:"image"`

	// Description is an optional short summary per locale.
	Description LocalizedText `json:"description" yaml:"description"`

	// Tags are category labels. Stored as a set; rendered sorted.
	Tags []string `json:"tags" yaml:"tags"`

	// Ingredients is the ordered ingredient list per locale.
	Ingredients LocalizedList `json:"ingredients" yaml:"ingredients"`

	// Instructions is the preparation text per locale.
	Instructions LocalizedText `json:"instructions" yaml:"instructions"`

	// Vegetarian gates visibility under the vegetarian inclusion predicate.
	Vegetarian bool `json:"vegetarian" yaml:"vegetarian"`

	// Benefits are display-only notes shown in the detail view.
	Benefits []string `json:"benefits" yaml:"benefits"`
}

// Clone returns a deep copy of the recipe.
func (r Recipe) Clone() Recipe {
	out := r
	out.Name = r.Name.Clone()
	out.Description = r.Description.Clone()
	out.Instructions = r.Instructions.Clone()
	out.Ingredients = r.Ingredients.Clone()
	out.Tags = cloneStrings(r.Tags)
	out.Benefits = cloneStrings(r.Benefits)
	return out
}

// SortedTags returns the tags in ascending order for rendering.
func (r Recipe) SortedTags() []string {
	tags := cloneStrings(r.Tags)
	sort.Strings(tags)
	return tags
}

// HasTag reports whether tag is an exact member of the recipe's tag set.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Fields returns the mutable fields of the recipe.
func (r Recipe) Fields() RecipeFields {
	c := r.Clone()
	return RecipeFields{
		Name:         c.Name,
		Image:        c.Image,
		Description:  c.Description,
		Tags:         c.Tags,
		Ingredients:  c.Ingredients,
		Instructions: c.Instructions,
		Vegetarian:   c.Vegetarian,
		Benefits:     c.Benefits,
	}
}

// Project returns the recipe as seen in a single locale.
// Fields missing the requested locale fall back to DefaultLocale and then
// to the first locale present.
func (r Recipe) Project(locale Locale) RecipeView {
	return RecipeView{
		ID:           r.ID,
		Locale:       locale,
		Name:         r.Name.Get(locale),
		Image:        r.Image,
		Description:  r.Description.Get(locale),
		Tags:         r.SortedTags(),
		Ingredients:  r.Ingredients.Get(locale),
		Instructions: r.Instructions.Get(locale),
		Vegetarian:   r.Vegetarian,
		Benefits:     cloneStrings(r.Benefits),
	}
}

// RecipeView is a locale projection of a Recipe, ready for display.
type RecipeView struct {
	ID           RecipeID `json:"id"`
	Locale       Locale   `json:"locale"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Vegetarian   bool     `json:"vegetarian"`
	Benefits     []string `json:"benefits,omitempty"`
}

// RecipeFields carries the mutable fields for create and update.
// Update replaces every field; there is no partial update.
type RecipeFields struct {
	Name         LocalizedText `json:"name" yaml:"name"`
	Image        string        `json:"image" yaml:"image"`
	Description  LocalizedText `json:"description" yaml:"description"`
	Tags         []string      `json:"tags" yaml:"tags"`
	Ingredients  LocalizedList `json:"ingredients" yaml:"ingredients"`
	Instructions LocalizedText `json:"instructions" yaml:"instructions"`
	Vegetarian   bool          `json:"vegetarian" yaml:"vegetarian"`
	Benefits     []string      `json:"benefits" yaml:"benefits"`
}

// Normalize returns a trimmed copy of the fields: blank locale values and
// ingredient lines are dropped and tags are deduplicated.
func (f RecipeFields) Normalize() RecipeFields {
	return RecipeFields{
		Name:         f.Name.trimmed(),
		Image:        strings.TrimSpace(f.Image),
		Description:  f.Description.trimmed(),
		Tags:         uniqueTrimmed(f.Tags),
		Ingredients:  f.Ingredients.trimmed(),
		Instructions: f.Instructions.trimmed(),
		Vegetarian:   f.Vegetarian,
		Benefits:     nonEmptyTrimmed(f.Benefits),
	}
}

// Validate checks that the required fields are present after trimming.
// It returns a *ValidationError naming the first missing field.
func (f RecipeFields) Validate() error {
	n := f.Normalize()
	switch {
	case n.Name.IsEmpty():
		return &ValidationError{Field: "name", Reason: "is required"}
	case n.Image == "":
		return &ValidationError{Field: "image", Reason: "is required"}
	case n.Ingredients.IsEmpty():
		return &ValidationError{Field: "ingredients", Reason: "at least one ingredient is required"}
	case n.Instructions.IsEmpty():
		return &ValidationError{Field: "instructions", Reason: "is required"}
	}
	return nil
}

// NewRecipe builds a recipe with the given id from normalised fields.
func NewRecipe(id RecipeID, f RecipeFields) Recipe {
	n := f.Normalize()
	return Recipe{
		ID:           id,
		Name:         n.Name,
		Image:        n.Image,
		Description:  n.Description,
		Tags:         n.Tags,
		Ingredients:  n.Ingredients,
		Instructions: n.Instructions,
		Vegetarian:   n.Vegetarian,
		Benefits:     n.Benefits,
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func nonEmptyTrimmed(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func uniqueTrimmed(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range nonEmptyTrimmed(in) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
