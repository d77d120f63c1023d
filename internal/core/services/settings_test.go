package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("display.locale", "ta")
	_ = store.Set("catalog.inclusion", "vegetarian")
	_ = store.Set("storage.backend", "file")
	_ = store.Set("storage.path", "/srv/recipes")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.LocaleTamil, settings.Display.Locale)
	assert.Equal(t, domain.InclusionVegetarian, settings.Catalog.Inclusion)
	assert.Equal(t, domain.StorageFile, settings.Storage.Backend)
	assert.Equal(t, "/srv/recipes", settings.Storage.Path)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("display.locale", "not a locale!")
	_ = store.Set("catalog.inclusion", "spicy")
	_ = store.Set("storage.backend", "floppy")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_SetLocale(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Locale
	}{
		{input: "ta", want: "ta"},
		{input: "TA", want: "ta"},
		{input: " en_us ", want: "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.SetLocale(domain.Locale(tt.input)))

			assert.Equal(t, string(tt.want), store.GetString("display.locale"))
		})
	}
}

func TestSettingsService_SetLocale_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	for _, bad := range []string{"", "   ", "not a locale!"} {
		err := service.SetLocale(domain.Locale(bad))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
	assert.Empty(t, store.Keys())
}

func TestSettingsService_SetInclusion(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetInclusion(domain.InclusionVegetarian))
	assert.Equal(t, "vegetarian", store.GetString("catalog.inclusion"))

	err := service.SetInclusion("spicy")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "vegetarian", store.GetString("catalog.inclusion"))
}

func TestSettingsService_SetStorage(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetStorage(domain.StorageFile, " /data/recipes "))
	assert.Equal(t, "file", store.GetString("storage.backend"))
	assert.Equal(t, "/data/recipes", store.GetString("storage.path"))

	require.NoError(t, service.SetStorage(domain.StorageSQLite, ""))
	_, ok := store.Get("storage.path")
	assert.False(t, ok, "empty path restores the default")

	assert.ErrorIs(t, service.SetStorage("floppy", ""), domain.ErrInvalidInput)
}

func TestSettingsService_Save_PreservesOtherSettings(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetLocale(domain.LocaleTamil))
	require.NoError(t, service.SetInclusion(domain.InclusionVegetarian))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleTamil, settings.Display.Locale)
	assert.Equal(t, domain.InclusionVegetarian, settings.Catalog.Inclusion)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantErr bool
	}{
		{name: "empty config", values: nil},
		{name: "valid values", values: map[string]string{
			"display.locale": "ta", "catalog.inclusion": "all", "storage.backend": "memory",
		}},
		{name: "bad locale", values: map[string]string{"display.locale": "???"}, wantErr: true},
		{name: "bad inclusion", values: map[string]string{"catalog.inclusion": "spicy"}, wantErr: true},
		{name: "bad backend", values: map[string]string{"storage.backend": "floppy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			for k, v := range tt.values {
				_ = store.Set(k, v)
			}

			err := NewSettingsService(store).Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

type failingConfigStore struct {
	*memory.ConfigStore
}

func (f failingConfigStore) Set(string, any) error {
	return errors.New("read-only config")
}

func TestSettingsService_Save_PropagatesErrors(t *testing.T) {
	service := NewSettingsService(failingConfigStore{memory.NewConfigStore()})

	err := service.SetInclusion(domain.InclusionAll)

	assert.ErrorContains(t, err, "save display locale")
	assert.ErrorContains(t, err, "read-only config")
}
