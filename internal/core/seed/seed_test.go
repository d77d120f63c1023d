package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

func TestRecipes(t *testing.T) {
	recipes, err := Recipes()
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	for i, r := range recipes {
		assert.Equal(t, domain.RecipeID(i+1), r.ID)
		assert.NoError(t, r.Fields().Validate(), "seed recipe %d must be valid", r.ID)
		assert.True(t, r.Name.Has(domain.LocaleEnglish))
		assert.True(t, r.Name.Has(domain.LocaleTamil))
		assert.NotEmpty(t, r.Benefits)
	}

	assert.Equal(t, "Masoor Dal (Red Lentil Curry)", recipes[2].Name.Get(domain.LocaleEnglish))
	assert.Equal(t, []string{"Rice", "Festive"}, recipes[1].Tags)
	assert.False(t, recipes[3].Vegetarian)
}

func TestRecipes_ReturnsFreshCopies(t *testing.T) {
	a := MustRecipes()
	a[0].Name[domain.LocaleEnglish] = "changed"

	b := MustRecipes()
	assert.Equal(t, "Paneer Butter Masala", b[0].Name.Get(domain.LocaleEnglish))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not yaml list", "id: 1", "parsing seed recipes"},
		{"zero id", "- id: 0\n  name: {en: x}", "id must be positive"},
		{"duplicate id", "- id: 1\n- id: 1", "duplicate id 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
