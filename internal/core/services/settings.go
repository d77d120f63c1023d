package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driven"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDisplayLocale    = "display.locale"
	keyCatalogInclusion = "catalog.inclusion"
	keyStorageBackend   = "storage.backend"
	keyStoragePath      = "storage.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Display: domain.DisplaySettings{
			Locale: s.getLocale(defaults.Display.Locale),
		},
		Catalog: domain.CatalogSettings{
			Inclusion: s.getInclusion(defaults.Catalog.Inclusion),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			Path:    s.configStore.GetString(keyStoragePath),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDisplayLocale, settings.Display.Locale.String()); err != nil {
		return fmt.Errorf("save display locale: %w", err)
	}
	if err := s.configStore.Set(keyCatalogInclusion, settings.Catalog.Inclusion.String()); err != nil {
		return fmt.Errorf("save catalog inclusion: %w", err)
	}
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}

	// An empty path means the default data directory.
	if settings.Storage.Path == "" {
		if err := s.configStore.Unset(keyStoragePath); err != nil {
			return fmt.Errorf("save storage path: %w", err)
		}
	} else if err := s.configStore.Set(keyStoragePath, settings.Storage.Path); err != nil {
		return fmt.Errorf("save storage path: %w", err)
	}

	return nil
}

// SetLocale updates the default display locale. The value must be a
// well-formed BCP 47 tag and is stored in canonical form.
func (s *SettingsService) SetLocale(locale domain.Locale) error {
	canonical, err := CanonicalLocale(string(locale))
	if err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Locale = canonical
	return s.Save(settings)
}

// SetInclusion updates the catalog inclusion predicate.
func (s *SettingsService) SetInclusion(inclusion domain.Inclusion) error {
	if !inclusion.IsValid() {
		return fmt.Errorf("%w: unknown inclusion %q", domain.ErrInvalidInput, inclusion)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Catalog.Inclusion = inclusion
	return s.Save(settings)
}

// SetStorage updates the storage backend and data directory.
// An empty path keeps the default location.
func (s *SettingsService) SetStorage(backend domain.StorageBackend, path string) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend
	settings.Storage.Path = strings.TrimSpace(path)
	return s.Save(settings)
}

// Validate checks the raw stored values, reporting the first one that
// Get would silently replace with a default.
func (s *SettingsService) Validate() error {
	if v := s.configStore.GetString(keyDisplayLocale); v != "" {
		if _, err := CanonicalLocale(v); err != nil {
			return err
		}
	}
	if v := s.configStore.GetString(keyCatalogInclusion); v != "" && !domain.Inclusion(v).IsValid() {
		return fmt.Errorf("%w: unknown inclusion %q", domain.ErrInvalidInput, v)
	}
	if v := s.configStore.GetString(keyStorageBackend); v != "" && !domain.StorageBackend(v).IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, v)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// CanonicalLocale parses a BCP 47 language tag and returns its canonical
// form, e.g. "TA" becomes "ta" and "en_us" becomes "en-US".
func CanonicalLocale(value string) (domain.Locale, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: locale is required", domain.ErrInvalidInput)
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid locale %q", domain.ErrInvalidInput, value)
	}
	return domain.Locale(tag.String()), nil
}

func (s *SettingsService) getLocale(defaultVal domain.Locale) domain.Locale {
	val := s.configStore.GetString(keyDisplayLocale)
	if val == "" {
		return defaultVal
	}
	locale, err := CanonicalLocale(val)
	if err != nil {
		return defaultVal
	}
	return locale
}

func (s *SettingsService) getInclusion(defaultVal domain.Inclusion) domain.Inclusion {
	val := domain.Inclusion(s.configStore.GetString(keyCatalogInclusion))
	if !val.IsValid() {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !val.IsValid() {
		return defaultVal
	}
	return val
}
