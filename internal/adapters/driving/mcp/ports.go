package mcp

import (
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog queries and mutates recipes.
	Catalog driving.CatalogService

	// Settings supplies the default locale. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}

// defaultLocale returns the configured display locale, or the built-in
// default when settings are unavailable.
func (p *Ports) defaultLocale() domain.Locale {
	if p.Settings == nil {
		return domain.DefaultLocale
	}
	settings, err := p.Settings.Get()
	if err != nil || settings.Display.Locale == "" {
		return domain.DefaultLocale
	}
	return settings.Display.Locale
}
