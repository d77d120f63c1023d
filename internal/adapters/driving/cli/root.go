// Package cli provides the cobra command tree for recipebook. It is a
// driving adapter: commands only talk to the core through driving ports.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
	"github.com/custodia-labs/recipebook/internal/logger"
)

// Options are the global flags a ServiceFactory needs to build services.
type Options struct {
	// ConfigDir overrides the configuration directory (~/.recipebook).
	ConfigDir string

	// Ephemeral keeps the catalog in memory for this run only.
	Ephemeral bool
}

// Services are the driving ports the commands use.
type Services struct {
	Catalog       driving.CatalogService
	Settings      driving.SettingsService
	Actions       driving.ActionService
	ConfigWatcher tui.ConfigWatcher

	// Close releases storage. May be nil.
	Close func() error
}

// ServiceFactory builds services once the global flags are parsed.
type ServiceFactory func(ctx context.Context, opts Options) (*Services, error)

// skipServices marks commands that run without the catalog.
const skipServices = "skip-services"

var (
	version = "dev"

	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	actionService   driving.ActionService
	configWatcher   tui.ConfigWatcher

	serviceFactory ServiceFactory
	closeServices  func() error

	verbose   bool
	configDir string
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "recipebook",
	Short: "A bilingual recipe catalog",
	Long: `recipebook keeps a small catalog of recipes with English and Tamil
names, ingredients and instructions.

Search and manage recipes from the command line, browse them in the
terminal UI, export them, or serve them to AI assistants over MCP.

Run without a subcommand in a terminal to open the terminal UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return cmd.Help()
		}
		return runTUI(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.recipebook)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the catalog in memory for this run only")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the function that builds services before a
// command runs.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices injects ready-made services and bypasses the factory.
func SetServices(s *Services) {
	serviceFactory = nil
	applyServices(s)
}

func applyServices(s *Services) {
	catalogService = s.Catalog
	settingsService = s.Settings
	actionService = s.Actions
	configWatcher = s.ConfigWatcher
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing storage: %v", err)
		}
		closeServices = nil
	}()
	return rootCmd.ExecuteContext(ctx)
}

func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil || cmd.Annotations[skipServices] == "true" {
		return nil
	}

	s, err := serviceFactory(cmd.Context(), Options{ConfigDir: configDir, Ephemeral: ephemeral})
	if err != nil {
		return fmt.Errorf("starting recipebook: %w", err)
	}
	applyServices(s)
	return nil
}

var (
	errNoCatalog  = errors.New("catalog service not configured")
	errNoSettings = errors.New("settings service not configured")
	errNoActions  = errors.New("action service not configured")
)
