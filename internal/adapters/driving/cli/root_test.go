package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/services"
)

type stubClipboard struct {
	text string
	err  error
}

func (c *stubClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type testEnv struct {
	catalog   *services.CatalogService
	settings  *services.SettingsService
	clipboard *stubClipboard
}

// setupTestServices wires the commands to a seeded in-memory catalog and
// restores global state when the test ends.
func setupTestServices(t *testing.T, inclusion domain.Inclusion) *testEnv {
	t.Helper()

	store := services.NewRecordStore(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(context.Background()))

	env := &testEnv{
		catalog:   services.NewCatalogService(store, inclusion),
		settings:  services.NewSettingsService(memory.NewConfigStore()),
		clipboard: &stubClipboard{},
	}
	SetServices(&Services{
		Catalog:  env.catalog,
		Settings: env.settings,
		Actions:  services.NewRecipeActionService(env.catalog, env.clipboard),
	})

	t.Cleanup(resetGlobals)
	return env
}

func resetGlobals() {
	SetServices(&Services{})
	resetFlags(rootCmd)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetArgs(nil)
}

// resetFlags restores every flag to its default; cobra keeps parsed values
// between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns everything written.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "recipebook", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "ephemeral"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"search", "tags", "recipe", "export", "import", "settings", "tui", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestServiceFactory_ReceivesGlobalFlags(t *testing.T) {
	env := setupTestServices(t, domain.InclusionAll)

	var got Options
	SetServiceFactory(func(_ context.Context, opts Options) (*Services, error) {
		got = opts
		return &Services{Catalog: env.catalog, Settings: env.settings}, nil
	})

	out, err := execute("--ephemeral", "--config-dir", "/tmp/rb", "tags")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/rb", Ephemeral: true}, got)
	assert.Contains(t, out, "Protein-rich")
}

func TestServiceFactory_Error(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)
	SetServiceFactory(func(context.Context, Options) (*Services, error) {
		return nil, errors.New("disk full")
	})

	_, err := execute("tags")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting recipebook")
	assert.Contains(t, err.Error(), "disk full")
}

func TestServiceFactory_SkippedForVersion(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)
	called := false
	SetServiceFactory(func(context.Context, Options) (*Services, error) {
		called = true
		return &Services{}, nil
	})

	_, err := execute("version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestExecute_ClosesServices(t *testing.T) {
	env := setupTestServices(t, domain.InclusionAll)
	closed := false
	SetServices(&Services{
		Catalog: env.catalog,
		Close: func() error {
			closed = true
			return nil
		},
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tags"})

	require.NoError(t, Execute(context.Background()))
	assert.True(t, closed)
}

func TestResolveLocale(t *testing.T) {
	env := setupTestServices(t, domain.InclusionAll)

	assert.Equal(t, domain.LocaleEnglish, resolveLocale(""))
	assert.Equal(t, domain.LocaleTamil, resolveLocale(" ta "))

	require.NoError(t, env.settings.SetLocale(domain.LocaleTamil))
	assert.Equal(t, domain.LocaleTamil, resolveLocale(""))
}

func TestParseID(t *testing.T) {
	id, err := parseID("3")
	require.NoError(t, err)
	assert.Equal(t, domain.RecipeID(3), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := parseID(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}
