// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// ErrNoSettingsService is reported when the view has no settings service.
var ErrNoSettingsService = errors.New("settings service not available")

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionLocale
	SectionInclusion
	SectionStorage
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// Option lists for each section.
var (
	localeOptions    = []domain.Locale{domain.LocaleEnglish, domain.LocaleTamil}
	inclusionOptions = []domain.Inclusion{domain.InclusionAll, domain.InclusionVegetarian}
	backendOptions   = []domain.StorageBackend{domain.StorageSQLite, domain.StorageFile, domain.StorageMemory}
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	notice   string

	section  Section
	selected int

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset returns to the overview.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.notice = ""
	v.err = nil
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if key == keyEsc {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.section = SectionOverview
		v.selected = 0
		return v, nil
	}

	count := v.optionCount()
	switch key {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < count-1 {
			v.selected++
		}
	case keyEnter:
		return v, v.choose()
	}
	return v, nil
}

func (v *View) optionCount() int {
	switch v.section {
	case SectionLocale:
		return len(localeOptions)
	case SectionInclusion:
		return len(inclusionOptions)
	case SectionStorage:
		return len(backendOptions)
	case SectionOverview:
	}
	return 3
}

func (v *View) choose() tea.Cmd {
	switch v.section {
	case SectionOverview:
		v.section = Section(v.selected + 1)
		v.selected = v.currentIndex()
		return nil
	case SectionLocale:
		locale := localeOptions[v.selected]
		return v.save("Language set to "+locale.Description(), func(s driving.SettingsService) error {
			return s.SetLocale(locale)
		})
	case SectionInclusion:
		inclusion := inclusionOptions[v.selected]
		return v.save(inclusion.Description()+" (applies on restart)", func(s driving.SettingsService) error {
			return s.SetInclusion(inclusion)
		})
	case SectionStorage:
		backend := backendOptions[v.selected]
		path := ""
		if v.settings != nil {
			path = v.settings.Storage.Path
		}
		return v.save(backend.Description()+" (applies on restart)", func(s driving.SettingsService) error {
			return s.SetStorage(backend, path)
		})
	}
	return nil
}

func (v *View) save(notice string, apply func(driving.SettingsService) error) tea.Cmd {
	v.section = SectionOverview
	v.selected = 0
	v.notice = notice
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: apply(v.settingsService)}
	}
}

// currentIndex returns the option index of the stored value for the
// active section.
func (v *View) currentIndex() int {
	if v.settings == nil {
		return 0
	}
	switch v.section {
	case SectionLocale:
		for i, l := range localeOptions {
			if l == v.settings.Display.Locale {
				return i
			}
		}
	case SectionInclusion:
		for i, inc := range inclusionOptions {
			if inc == v.settings.Catalog.Inclusion {
				return i
			}
		}
	case SectionStorage:
		for i, b := range backendOptions {
			if b == v.settings.Storage.Backend {
				return i
			}
		}
	case SectionOverview:
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	} else if v.notice != "" {
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] Back"))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		v.renderOverview(&b)
	case SectionLocale:
		labels := make([]string, len(localeOptions))
		for i, l := range localeOptions {
			labels[i] = l.Description()
		}
		v.renderOptions(&b, "Display language", labels)
	case SectionInclusion:
		labels := make([]string, len(inclusionOptions))
		for i, inc := range inclusionOptions {
			labels[i] = inc.Description()
		}
		v.renderOptions(&b, "Catalog", labels)
	case SectionStorage:
		labels := make([]string, len(backendOptions))
		for i, be := range backendOptions {
			labels[i] = be.Description()
		}
		v.renderOptions(&b, "Storage backend", labels)
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [esc] Back"))
	return b.String()
}

func (v *View) renderOverview(b *strings.Builder) {
	path := v.settings.Storage.Path
	if path == "" {
		path = "default"
	}
	rows := []string{
		fmt.Sprintf("%-18s %s", "Display language", v.settings.Display.Locale.Description()),
		fmt.Sprintf("%-18s %s", "Catalog", v.settings.Catalog.Inclusion.Description()),
		fmt.Sprintf("%-18s %s (%s)", "Storage backend", v.settings.Storage.Backend.Description(), path),
	}
	for i, row := range rows {
		b.WriteString(v.renderRow(i, row))
	}
}

func (v *View) renderOptions(b *strings.Builder, title string, labels []string) {
	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(v.renderRow(i, label))
	}
}

func (v *View) renderRow(i int, text string) string {
	if i == v.selected {
		return v.styles.Selected.Render("> "+text) + "\n"
	}
	return v.styles.Normal.Render("  "+text) + "\n"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Selected returns the selected row.
func (v *View) Selected() int {
	return v.selected
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
