package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for recipe resources.
	uriScheme = "recipebook://"

	recipesURI = uriScheme + "recipes"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         recipesURI,
		Name:        "recipes",
		Description: "Every visible recipe in the default locale",
		MIMEType:    "application/json",
	}, s.handleRecipesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: recipesURI + "/{id}",
		Name:        "recipe",
		Description: "A single recipe with every locale",
		MIMEType:    "application/json",
	}, s.handleRecipeResource)
}

// handleRecipesResource returns every visible recipe projected to the
// default locale.
func (s *Server) handleRecipesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recipes, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	locale := s.ports.defaultLocale()
	views := make([]domain.RecipeView, len(recipes))
	for i := range recipes {
		views[i] = recipes[i].Project(locale)
	}

	return jsonResult(req.Params.URI, views)
}

// handleRecipeResource returns a single recipe with every locale.
func (s *Server) handleRecipeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractRecipeID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recipe, err := s.ports.Catalog.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	return jsonResult(req.Params.URI, recipe)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecipeID extracts the id from a URI like recipebook://recipes/{id}.
func extractRecipeID(uri string) (domain.RecipeID, bool) {
	const prefix = recipesURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return domain.RecipeID(id), true
}
