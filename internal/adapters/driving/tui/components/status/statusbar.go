// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// State represents the current status to display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateNotice  State = "notice"
	StateConfirm State = "confirm"
)

// Bar displays status, the active filter and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	bindings []key.Binding
	state    State
	message  string
	count    int
	tag      string
	locale   domain.Locale
	width    int
}

// NewBar creates a new status bar showing the given hints. Nil bindings
// fall back to the short help of the default keymap.
func NewBar(s *styles.Styles, bindings []key.Binding) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if bindings == nil {
		bindings = keymap.DefaultKeyMap().ShortHelp()
	}

	return &Bar{
		styles:   s,
		bindings: bindings,
		state:    StateReady,
		locale:   domain.DefaultLocale,
		width:    80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateNotice:
		return s.styles.Success.Render(s.message)
	case StateConfirm:
		return s.styles.Warning.Render(s.message)
	case StateReady:
	}

	parts := []string{fmt.Sprintf("%d recipes", s.count)}
	if s.tag != "" {
		parts = append(parts, "tag: "+s.tag)
	}
	parts = append(parts, s.locale.String())
	return s.styles.Normal.Render(strings.Join(parts, " | "))
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the state and the message shown with it.
func (s *Bar) SetMessage(state State, message string) {
	s.state = state
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCount sets the number of visible recipes.
func (s *Bar) SetCount(count int) {
	s.count = count
}

// Count returns the number of visible recipes.
func (s *Bar) Count() int {
	return s.count
}

// SetFilter sets the active tag and display locale.
func (s *Bar) SetFilter(tag string, locale domain.Locale) {
	s.tag = tag
	s.locale = locale
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear returns the bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
