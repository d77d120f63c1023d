package driving

import "github.com/custodia-labs/recipebook/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLocale updates the default display locale.
	SetLocale(locale domain.Locale) error

	// SetInclusion updates the catalog inclusion predicate.
	SetInclusion(inclusion domain.Inclusion) error

	// SetStorage updates the storage backend and data directory.
	SetStorage(backend domain.StorageBackend, path string) error

	// Validate checks that the current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
