// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the recipe book. It lets AI assistants search, read and edit recipes.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
