package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{Locale: LocaleTamil}.IsZero())
	assert.False(t, Criteria{Text: "dal"}.IsZero())
	assert.False(t, Criteria{Tag: "Main"}.IsZero())
	assert.False(t, Criteria{LocaleOnly: true}.IsZero())
}

func TestInclusion_IsValid(t *testing.T) {
	tests := []struct {
		inclusion Inclusion
		expected  bool
	}{
		{InclusionAll, true},
		{InclusionVegetarian, true},
		{Inclusion(""), false},
		{Inclusion("vegan"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.inclusion), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.inclusion.IsValid())
		})
	}
}

func TestInclusion_Includes(t *testing.T) {
	veg := &Recipe{Vegetarian: true}
	nonVeg := &Recipe{Vegetarian: false}

	assert.True(t, InclusionAll.Includes(veg))
	assert.True(t, InclusionAll.Includes(nonVeg))
	assert.True(t, InclusionVegetarian.Includes(veg))
	assert.False(t, InclusionVegetarian.Includes(nonVeg))
	assert.True(t, Inclusion("").Includes(nonVeg))
}

func TestInclusion_Description(t *testing.T) {
	assert.Equal(t, "All recipes", InclusionAll.Description())
	assert.Equal(t, "Vegetarian only", InclusionVegetarian.Description())
	assert.Equal(t, "Unknown", Inclusion("x").Description())
}
