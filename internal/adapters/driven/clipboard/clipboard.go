// Package clipboard adapts the system clipboard to driven.Clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/recipebook/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// ErrUnsupported is returned when no clipboard utility is available,
// e.g. on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("no clipboard utility available")

// System writes to the operating system clipboard.
type System struct {
	write       func(string) error
	unsupported bool
}

// New returns the system clipboard adapter.
func New() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// WriteText replaces the clipboard contents with text.
func (s *System) WriteText(text string) error {
	if s.unsupported {
		return ErrUnsupported
	}
	return s.write(text)
}
