package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the display language, the catalog inclusion and the
storage backend. Settings are kept in config.toml in the configuration
directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLocaleCmd = &cobra.Command{
	Use:   "locale [tag]",
	Short: "Set the display language",
	Long: `Set the default display language as a BCP 47 tag.

Recipes ship with:
  en - English
  ta - Tamil

Fields missing the language fall back to English.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsLocale,
}

var settingsInclusionCmd = &cobra.Command{
	Use:   "inclusion [all|vegetarian]",
	Short: "Choose which recipes are shown",
	Long: `Choose the base catalog filter.

  all        - every recipe
  vegetarian - only recipes marked vegetarian`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.InclusionAll), string(domain.InclusionVegetarian)},
	RunE:      runSettingsInclusion,
}

var settingsStoragePath string

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [sqlite|file|memory]",
	Short: "Choose the storage backend",
	Long: `Choose where the catalog is kept.

  sqlite - SQLite database (default)
  file   - one JSON file per key
  memory - nothing is persisted`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.StorageSQLite), string(domain.StorageFile), string(domain.StorageMemory)},
	RunE:      runSettingsStorage,
}

func init() {
	settingsStorageCmd.Flags().StringVar(&settingsStoragePath, "path", "", "data directory (default ~/.recipebook/data)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLocaleCmd)
	settingsCmd.AddCommand(settingsInclusionCmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Display]")
	fmt.Fprintf(out, "  Language: %s (%s)\n", settings.Display.Locale.Description(), settings.Display.Locale)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Catalog]")
	fmt.Fprintf(out, "  Recipes: %s (%s)\n", settings.Catalog.Inclusion.Description(), settings.Catalog.Inclusion)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Storage]")
	fmt.Fprintf(out, "  Backend: %s (%s)\n", settings.Storage.Backend.Description(), settings.Storage.Backend)
	path := settings.Storage.Path
	if path == "" {
		path = "(default)"
	}
	fmt.Fprintf(out, "  Path: %s\n", path)

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
	return nil
}

func runSettingsLocale(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	if err := settingsService.SetLocale(domain.Locale(args[0])); err != nil {
		return fmt.Errorf("failed to set locale: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Display language set to %s\n", settings.Display.Locale.Description())
	return nil
}

func runSettingsInclusion(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	inclusion := domain.Inclusion(strings.ToLower(strings.TrimSpace(args[0])))
	if err := settingsService.SetInclusion(inclusion); err != nil {
		return fmt.Errorf("failed to set inclusion: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Catalog set to %s\n", inclusion.Description())
	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	backend := domain.StorageBackend(strings.ToLower(strings.TrimSpace(args[0])))
	if err := settingsService.SetStorage(backend, settingsStoragePath); err != nil {
		return fmt.Errorf("failed to set storage: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Storage set to %s\n", backend.Description())
	if backend == domain.StorageMemory {
		fmt.Fprintln(cmd.OutOrStdout(), "Warning: recipes will not be saved between runs.")
	}
	return nil
}
