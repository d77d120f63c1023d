package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/clipboard"
	configfile "github.com/custodia-labs/recipebook/internal/adapters/driven/config/file"
	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/cli"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driven"
	"github.com/custodia-labs/recipebook/internal/core/services"
	"github.com/custodia-labs/recipebook/internal/logger"
)

// buildServices opens the configured storage, loads the catalog and wires
// the driving services.
func buildServices(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	logger.Section("Startup")

	configDir, err := resolveConfigDir(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	if err := settingsService.Validate(); err != nil {
		logger.Warn("config %s: %v; using defaults for invalid values", configStore.Path(), err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	backend := settings.Storage.Backend
	if opts.Ephemeral {
		backend = domain.StorageMemory
	}
	dataDir := settings.Storage.Path
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}

	kv, err := openKeyValueStore(backend, dataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage backend %s", backend)

	store := services.NewRecordStore(kv, nil)
	if err := store.Load(ctx); err != nil {
		if closeErr := kv.Close(); closeErr != nil {
			logger.Warn("closing storage: %v", closeErr)
		}
		return nil, fmt.Errorf("loading catalog from %s storage: %w", backend, err)
	}

	catalog := services.NewCatalogService(store, settings.Catalog.Inclusion)

	return &cli.Services{
		Catalog:       catalog,
		Settings:      settingsService,
		Actions:       services.NewRecipeActionService(catalog, clipboard.New()),
		ConfigWatcher: configStore,
		Close:         kv.Close,
	}, nil
}

func resolveConfigDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".recipebook"), nil
}

func openKeyValueStore(backend domain.StorageBackend, dataDir string) (driven.KeyValueStore, error) {
	switch backend {
	case domain.StorageMemory:
		return memory.NewKVStore(), nil
	case domain.StorageFile:
		kv, err := file.NewKVStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening file store: %w", err)
		}
		return kv, nil
	default:
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return db.KeyValueStore(), nil
	}
}
