package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		want    string
	}{
		{"quit", km.Quit, "q"},
		{"help", km.Help, "?"},
		{"back", km.Back, "esc"},
		{"up", km.Up, "k"},
		{"down", km.Down, "j"},
		{"select", km.Select, "enter"},
		{"search", km.Search, "/"},
		{"next tag", km.NextTag, "t"},
		{"prev tag", km.PrevTag, "T"},
		{"new", km.New, "n"},
		{"edit", km.Edit, "e"},
		{"delete", km.Delete, "d"},
		{"copy", km.Copy, "c"},
		{"locale", km.Locale, "l"},
		{"confirm", km.Confirm, "y"},
		{"save", km.Save, "ctrl+s"},
		{"next field", km.NextField, "tab"},
		{"prev field", km.PrevField, "shift+tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.binding.Keys(), tt.want)
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 2)
	assert.Equal(t, km.Quit.Keys(), bindings[0].Keys())
}

func TestContextHelp_NotEmpty(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.CatalogHelp())
	assert.NotEmpty(t, km.DetailHelp())
	assert.NotEmpty(t, km.EditorHelp())
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	assert.Len(t, groups, 5)
	for _, g := range groups {
		assert.NotEmpty(t, g)
	}
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("down", km.Down))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("t", km.PrevTag))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			h := b.Help()
			assert.NotEmpty(t, h.Key)
			assert.NotEmpty(t, h.Desc)
		}
	}
}
