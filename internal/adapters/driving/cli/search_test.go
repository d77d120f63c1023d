package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [text...]", searchCmd.Use)
}

func TestSearchCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"tag", "locale", "locale-only", "json"} {
		assert.NotNil(t, searchCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "t", searchCmd.Flags().Lookup("tag").Shorthand)
}

func TestSearchCmd_Golden(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)

	out, err := execute("search", "curry")

	require.NoError(t, err)
	newGoldie(t).Assert(t, "search_curry", []byte(out))
}

func TestSearchCmd_JoinsWords(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)

	out, err := execute("search", "red", "lentil")

	require.NoError(t, err)
	assert.Contains(t, out, "[3] Masoor Dal (Red Lentil Curry)")
	assert.Contains(t, out, "1 recipe\n")
}

func TestSearchCmd_Tag(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)

	out, err := execute("search", "--tag", "Rice")

	require.NoError(t, err)
	assert.Contains(t, out, "[2] Vegetable Biryani (vegetarian)")
	assert.NotContains(t, out, "Paneer")
}

func TestSearchCmd_LocaleOnly(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)

	out, err := execute("search", "--locale", "ta", "--locale-only", "பருப்பு")

	require.NoError(t, err)
	assert.Contains(t, out, "[3] மசூர் பருப்பு (சிவப்பு பருப்பு கறி)")
	assert.Contains(t, out, "1 recipe\n")
}

func TestSearchCmd_JSON(t *testing.T) {
	setupTestServices(t, domain.InclusionVegetarian)

	out, err := execute("search", "--json", "curry")
	require.NoError(t, err)

	var views []domain.RecipeView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, domain.RecipeID(1), views[0].ID)
	assert.Equal(t, domain.RecipeID(3), views[1].ID)
}

func TestSearchCmd_EmptyVegetarian(t *testing.T) {
	setupTestServices(t, domain.InclusionVegetarian)

	out, err := execute("search", "chicken")

	require.NoError(t, err)
	assert.Equal(t, "No vegetarian recipes found.\n", out)
}

func TestSearchCmd_Empty(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)

	out, err := execute("search", "pizza")

	require.NoError(t, err)
	assert.Equal(t, "No recipes found.\n", out)
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	t.Cleanup(resetGlobals)
	SetServices(&Services{})

	_, err := execute("search", "curry")

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoCatalog)
}

func TestTagsCmd(t *testing.T) {
	setupTestServices(t, domain.InclusionAll)

	out, err := execute("tags")

	require.NoError(t, err)
	assert.Equal(t, "Comfort Food\nFestive\nMain\nNon-veg\nNorth Indian\nProtein-rich\nRice\n", out)
}

func TestTagsCmd_VegetarianJSON(t *testing.T) {
	setupTestServices(t, domain.InclusionVegetarian)

	out, err := execute("tags", "--json")
	require.NoError(t, err)

	var tags []string
	require.NoError(t, json.Unmarshal([]byte(out), &tags))
	assert.NotContains(t, tags, "Non-veg")
	assert.Len(t, tags, 6)
}
