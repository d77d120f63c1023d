package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/logger"
)

// configWatchStarted carries the change channel once the watcher is up.
type configWatchStarted struct {
	changes <-chan struct{}
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// session holds per-run state shared by the views.
	session *session.Session

	menuView     *menu.View
	catalogView  *catalog.View
	detailView   *detail.View
	editorView   *editor.View
	settingsView *settings.View

	// configChanges signals config file edits; nil when not watching.
	configChanges <-chan struct{}

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	locale := domain.DefaultLocale
	if ports.Settings != nil {
		if cfg, err := ports.Settings.Get(); err != nil {
			logger.Warn("loading settings: %v", err)
		} else {
			locale = cfg.Display.Locale
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	sess := session.New(locale)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		session:      sess,
		menuView:     menu.NewView(s, ports.Catalog.Inclusion()),
		catalogView:  catalog.NewView(s, km, sess, ports.Catalog, ports.Actions),
		detailView:   detail.NewView(s, km, sess, ports.Catalog, ports.Actions),
		editorView:   editor.NewView(s, km, sess, ports.Catalog),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.catalogView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.editorView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Recipe Book"),
		a.watchConfig(),
	)
}

// watchConfig starts the config watcher, if one is configured.
func (a *App) watchConfig() tea.Cmd {
	if a.ports.ConfigWatcher == nil {
		return nil
	}
	watcher := a.ports.ConfigWatcher
	ctx := a.ctx
	return func() tea.Msg {
		changes, err := watcher.Watch(ctx)
		if err != nil {
			logger.Warn("config watch disabled: %v", err)
			return nil
		}
		return configWatchStarted{changes: changes}
	}
}

// waitForChange blocks until the next config change. It yields nothing
// once the channel is closed.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.ConfigChanged{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewCatalog:
			return a, a.catalogView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewDetail, messages.ViewEditor, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.RecipesLoaded:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd

	case messages.RecipeSelected:
		a.detailView.SetRecipe(msg.Recipe)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.EditRequested:
		var recipe *domain.Recipe
		if msg.ID != 0 {
			r, err := a.ports.Catalog.Get(a.ctx, msg.ID)
			if err != nil {
				a.err = err
				return a, a.forward(messages.ErrorOccurred{Err: err})
			}
			recipe = r
		}
		a.editorView.Load(recipe)
		a.currentView = messages.ViewEditor
		return a, a.editorView.Init()

	case messages.RecipeSaved:
		a.editorView, cmd = a.editorView.Update(msg)
		if msg.Err != nil || msg.Recipe == nil {
			return a, cmd
		}
		a.detailView.SetRecipe(*msg.Recipe)
		a.currentView = messages.ViewDetail
		return a, tea.Batch(cmd, a.catalogView.Refresh())

	case messages.RecipeDeleted, messages.NameCopied:
		return a, a.forward(msg)

	case messages.LocaleToggled:
		cmd = a.forward(msg)
		if a.currentView != messages.ViewCatalog {
			a.catalogView.SyncLocale()
		}
		return a, tea.Batch(cmd, a.catalogView.Refresh())

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil && a.session.SetDefaultLocale(msg.Settings.Display.Locale) {
			a.catalogView.SyncLocale()
			cmd = a.catalogView.Refresh()
		}
		var viewCmd tea.Cmd
		a.settingsView, viewCmd = a.settingsView.Update(msg)
		return a, tea.Batch(cmd, viewCmd)

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case configWatchStarted:
		a.configChanges = msg.changes
		return a, waitForChange(msg.changes)

	case messages.ConfigChanged:
		logger.Debug("config changed, reloading settings")
		return a, tea.Batch(a.settingsView.Init(), waitForChange(a.configChanges))

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}
	return cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCatalog:
		return a.catalogView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewEditor:
		return a.editorView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back
  ctrl+c      Quit

Catalog:
  j/k, ↑/↓    Navigate recipes
  /           Search by name or description
  t / T       Next / previous tag filter
  enter       Open recipe
  n           New recipe
  e           Edit recipe
  d           Delete recipe
  c           Copy name to clipboard
  l           Toggle English / Tamil

Editor:
  tab         Next field
  ctrl+s      Save
  esc         Cancel

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Session returns the shared session state.
func (a *App) Session() *session.Session {
	return a.session
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.catalogView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.editorView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
