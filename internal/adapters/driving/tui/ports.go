// Package tui provides an interactive terminal user interface for the
// recipe book. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// ConfigWatcher signals when the configuration changes on disk. The
// channel is closed when ctx is cancelled.
type ConfigWatcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog queries and mutates recipes.
	Catalog driving.CatalogService

	// Settings manages application settings.
	Settings driving.SettingsService

	// Actions provides side actions such as copying a name.
	Actions driving.ActionService

	// ConfigWatcher reports config file edits. Optional.
	ConfigWatcher ConfigWatcher
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	settings driving.SettingsService,
	actions driving.ActionService,
) *Ports {
	return &Ports{
		Catalog:  catalog,
		Settings: settings,
		Actions:  actions,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
