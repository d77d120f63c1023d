package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// SearchInput is the input schema for the search_recipes tool.
type SearchInput struct {
	Text       string `json:"text,omitempty" jsonschema:"case-insensitive substring of the name or description"`
	Tag        string `json:"tag,omitempty" jsonschema:"exact tag to filter by; see list_tags"`
	Locale     string `json:"locale,omitempty" jsonschema:"language for results, en or ta (default from settings)"`
	LocaleOnly bool   `json:"locale_only,omitempty" jsonschema:"only recipes named in the locale, matching text in that locale only"`
}

// SearchOutput is the output schema for the search_recipes tool.
type SearchOutput struct {
	Recipes []domain.RecipeView `json:"recipes"`
	Count   int                 `json:"count"`
}

// TagsInput is the input schema for the list_tags tool.
type TagsInput struct{}

// TagsOutput is the output schema for the list_tags tool.
type TagsOutput struct {
	Tags []string `json:"tags"`
}

// GetRecipeInput is the input schema for the get_recipe tool.
type GetRecipeInput struct {
	ID int `json:"id" jsonschema:"recipe id"`
}

// RecipeOutput carries a full recipe with every locale.
type RecipeOutput struct {
	Recipe domain.Recipe `json:"recipe"`
}

// RecipeInput holds the mutable fields of a recipe. Localised fields are
// keyed by locale code.
type RecipeInput struct {
	Name         map[string]string   `json:"name" jsonschema:"recipe name per locale, e.g. {\"en\": \"Lemon Rice\"}"`
	Image        string              `json:"image" jsonschema:"image URL"`
	Description  map[string]string   `json:"description,omitempty" jsonschema:"short summary per locale"`
	Tags         []string            `json:"tags,omitempty" jsonschema:"category labels"`
	Ingredients  map[string][]string `json:"ingredients" jsonschema:"ingredient list per locale"`
	Instructions map[string]string   `json:"instructions" jsonschema:"preparation steps per locale"`
	Vegetarian   bool                `json:"vegetarian,omitempty" jsonschema:"whether the recipe is vegetarian"`
	Benefits     []string            `json:"benefits,omitempty" jsonschema:"health notes"`
}

// UpdateRecipeInput is the input schema for the update_recipe tool.
// Every field is replaced.
type UpdateRecipeInput struct {
	ID     int         `json:"id" jsonschema:"recipe id"`
	Recipe RecipeInput `json:"recipe" jsonschema:"the new recipe fields"`
}

// DeleteRecipeInput is the input schema for the delete_recipe tool.
type DeleteRecipeInput struct {
	ID int `json:"id" jsonschema:"recipe id"`
}

// DeleteOutput is the output schema for the delete_recipe tool.
type DeleteOutput struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_recipes",
		Description: "Search recipes by text and tag",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List the tags of all visible recipes",
	}, s.handleListTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recipe",
		Description: "Get a recipe with every locale",
	}, s.handleGetRecipe)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_recipe",
		Description: "Create a recipe; the id is assigned by the catalog",
	}, s.handleCreateRecipe)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_recipe",
		Description: "Replace every field of an existing recipe",
	}, s.handleUpdateRecipe)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_recipe",
		Description: "Delete a recipe",
		Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)},
	}, s.handleDeleteRecipe)
}

func boolPtr(b bool) *bool {
	return &b
}

// handleSearch handles the search_recipes tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	locale := domain.Locale(input.Locale)
	if locale == "" {
		locale = s.ports.defaultLocale()
	}

	recipes, err := s.ports.Catalog.Search(ctx, domain.Criteria{
		Text:       input.Text,
		Tag:        input.Tag,
		Locale:     locale,
		LocaleOnly: input.LocaleOnly,
	})
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("searching recipes: %w", err)
	}

	output := SearchOutput{
		Recipes: make([]domain.RecipeView, len(recipes)),
		Count:   len(recipes),
	}
	for i := range recipes {
		output.Recipes[i] = recipes[i].Project(locale)
	}

	return nil, output, nil
}

// handleListTags handles the list_tags tool invocation.
func (s *Server) handleListTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ TagsInput,
) (*mcp.CallToolResult, TagsOutput, error) {
	tags, err := s.ports.Catalog.TagOptions(ctx)
	if err != nil {
		return nil, TagsOutput{}, fmt.Errorf("listing tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return nil, TagsOutput{Tags: tags}, nil
}

// handleGetRecipe handles the get_recipe tool invocation.
func (s *Server) handleGetRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRecipeInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	recipe, err := s.ports.Catalog.Get(ctx, domain.RecipeID(input.ID))
	if err != nil {
		return nil, RecipeOutput{}, err
	}
	return nil, RecipeOutput{Recipe: *recipe}, nil
}

// handleCreateRecipe handles the create_recipe tool invocation.
func (s *Server) handleCreateRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecipeInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	recipe, err := s.ports.Catalog.Create(ctx, input.fields())
	if err != nil {
		return nil, RecipeOutput{}, err
	}
	return nil, RecipeOutput{Recipe: *recipe}, nil
}

// handleUpdateRecipe handles the update_recipe tool invocation.
func (s *Server) handleUpdateRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateRecipeInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	recipe, err := s.ports.Catalog.Update(ctx, domain.RecipeID(input.ID), input.Recipe.fields())
	if err != nil {
		return nil, RecipeOutput{}, err
	}
	return nil, RecipeOutput{Recipe: *recipe}, nil
}

// handleDeleteRecipe handles the delete_recipe tool invocation.
func (s *Server) handleDeleteRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteRecipeInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	if err := s.ports.Catalog.Delete(ctx, domain.RecipeID(input.ID)); err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

// fields converts the wire input to domain fields.
func (in RecipeInput) fields() domain.RecipeFields {
	f := domain.RecipeFields{
		Name:         toText(in.Name),
		Image:        in.Image,
		Description:  toText(in.Description),
		Tags:         in.Tags,
		Instructions: toText(in.Instructions),
		Vegetarian:   in.Vegetarian,
		Benefits:     in.Benefits,
	}
	if in.Ingredients != nil {
		f.Ingredients = make(domain.LocalizedList, len(in.Ingredients))
		for l, items := range in.Ingredients {
			f.Ingredients[domain.Locale(l)] = items
		}
	}
	return f
}

func toText(m map[string]string) domain.LocalizedText {
	if m == nil {
		return nil
	}
	out := make(domain.LocalizedText, len(m))
	for l, v := range m {
		out[domain.Locale(l)] = v
	}
	return out
}
