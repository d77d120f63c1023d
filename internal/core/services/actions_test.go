package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) WriteText(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func TestRecipeActionService_CopyName(t *testing.T) {
	tests := []struct {
		name   string
		locale domain.Locale
		want   string
	}{
		{name: "english", locale: domain.LocaleEnglish, want: "Paneer Butter Masala"},
		{name: "tamil", locale: domain.LocaleTamil, want: "பனீர் பட்டர் மசாலா"},
		{name: "missing locale falls back", locale: "fr", want: "Paneer Butter Masala"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &mockClipboard{}
			service := NewRecipeActionService(newSeededCatalog(t, domain.InclusionAll), clip)

			got, err := service.CopyName(context.Background(), 1, tt.locale)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, clip.text)
		})
	}
}

func TestRecipeActionService_CopyName_NotFound(t *testing.T) {
	clip := &mockClipboard{}
	service := NewRecipeActionService(newSeededCatalog(t, domain.InclusionAll), clip)

	_, err := service.CopyName(context.Background(), 99, domain.LocaleEnglish)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, clip.text)
}

func TestRecipeActionService_CopyName_ClipboardErrors(t *testing.T) {
	catalog := newSeededCatalog(t, domain.InclusionAll)

	_, err := NewRecipeActionService(catalog, nil).CopyName(context.Background(), 2, domain.LocaleEnglish)
	assert.ErrorIs(t, err, ErrClipboardUnavailable)

	failing := &mockClipboard{err: errors.New("no display")}
	name, err := NewRecipeActionService(catalog, failing).CopyName(context.Background(), 2, domain.LocaleEnglish)
	assert.ErrorContains(t, err, "no display")
	assert.Equal(t, "Vegetable Biryani", name)
}
