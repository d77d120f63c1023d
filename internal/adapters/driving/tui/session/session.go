// Package session holds the per-run presentation state of the TUI: the
// display locale and the recipe being edited.
package session

import (
	"sync"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// Session is shared by the views of one TUI run. It is safe for use from
// the commands bubbletea runs in other goroutines.
type Session struct {
	mu            sync.RWMutex
	locale        domain.Locale
	defaultLocale domain.Locale
	overridden    bool
	editingID     domain.RecipeID
}

// New creates a session showing the given default locale.
func New(defaultLocale domain.Locale) *Session {
	if defaultLocale == "" {
		defaultLocale = domain.DefaultLocale
	}
	return &Session{
		locale:        defaultLocale,
		defaultLocale: defaultLocale,
	}
}

// Locale returns the locale used for display and editing.
func (s *Session) Locale() domain.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// ToggleLocale switches between English and Tamil and returns the new
// locale. After a toggle, changes to the configured default no longer
// move the session.
func (s *Session) ToggleLocale() domain.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locale == domain.LocaleTamil {
		s.locale = domain.LocaleEnglish
	} else {
		s.locale = domain.LocaleTamil
	}
	s.overridden = true
	return s.locale
}

// SetDefaultLocale records a new configured default. The session follows
// it unless the user has toggled the locale. It reports whether the
// display locale changed.
func (s *Session) SetDefaultLocale(locale domain.Locale) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if locale == "" {
		return false
	}
	s.defaultLocale = locale
	if s.overridden || s.locale == locale {
		return false
	}
	s.locale = locale
	return true
}

// DefaultLocale returns the configured default locale.
func (s *Session) DefaultLocale() domain.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultLocale
}

// StartEdit marks id as the recipe being edited.
func (s *Session) StartEdit(id domain.RecipeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = id
}

// StartCreate clears the edited id so the next save creates a recipe.
func (s *Session) StartCreate() {
	s.StartEdit(0)
}

// EditingID returns the id being edited, or 0 when creating.
func (s *Session) EditingID() domain.RecipeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}

// Editing reports whether an existing recipe is being edited.
func (s *Session) Editing() bool {
	return s.EditingID() != 0
}
