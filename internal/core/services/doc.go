// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// RecordStore owns the recipe collection and its persistence round-trip.
// Query and TagUniverse are the pure query engine. CatalogService,
// SettingsService and RecipeActionService are the adapter-facing boundary.
package services
