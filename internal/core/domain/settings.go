package domain

const unknownDescription = "Unknown"

// StorageBackend selects the key-value store that holds the catalog.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite keeps the catalog in a SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageFile keeps the catalog in a JSON file per key.
	StorageFile StorageBackend = "file"

	// StorageMemory keeps the catalog in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageFile, StorageMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if data survives a restart.
func (b StorageBackend) IsPersistent() bool {
	return b == StorageSQLite || b == StorageFile
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite database"
	case StorageFile:
		return "JSON files"
	case StorageMemory:
		return "In-memory (not persisted)"
	default:
		return unknownDescription
	}
}

// DisplaySettings holds presentation preferences.
type DisplaySettings struct {
	// Locale is the default language for names and instructions.
	Locale Locale
}

// CatalogSettings holds catalog behaviour configuration.
type CatalogSettings struct {
	// Inclusion is the base visibility predicate.
	Inclusion Inclusion
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the key-value store implementation.
	Backend StorageBackend

	// Path is the data directory. Empty means ~/.recipebook/data.
	Path string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Display holds presentation settings.
	Display DisplaySettings

	// Catalog holds catalog settings.
	Catalog CatalogSettings

	// Storage holds persistence settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			Locale: DefaultLocale,
		},
		Catalog: CatalogSettings{
			Inclusion: InclusionAll,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}
