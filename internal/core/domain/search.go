package domain

// Criteria configures a catalog query.
type Criteria struct {
	// Text is matched case-insensitively as a substring of name and
	// description. Empty matches everything.
	Text string

	// Tag restricts results to recipes carrying this exact tag.
	// Empty skips the tag filter.
	Tag string

	// Locale selects the language used by LocaleOnly.
	Locale Locale

	// LocaleOnly keeps only recipes whose name exists in Locale, and
	// matches Text against that locale only.
	LocaleOnly bool
}

// IsZero reports whether the criteria filter nothing beyond inclusion.
func (c Criteria) IsZero() bool {
	return c.Text == "" && c.Tag == "" && !c.LocaleOnly
}

// Inclusion names the base predicate that decides default visibility.
type Inclusion string

// Available inclusion predicates.
const (
	// InclusionAll shows every record.
	InclusionAll Inclusion = "all"

	// InclusionVegetarian shows only records flagged vegetarian.
	InclusionVegetarian Inclusion = "vegetarian"
)

// IsValid returns true if the inclusion is recognised.
func (i Inclusion) IsValid() bool {
	switch i {
	case InclusionAll, InclusionVegetarian:
		return true
	default:
		return false
	}
}

// Includes applies the predicate to a recipe.
// Unknown values behave like InclusionAll.
func (i Inclusion) Includes(r *Recipe) bool {
	if i == InclusionVegetarian {
		return r.Vegetarian
	}
	return true
}

// String returns the string representation.
func (i Inclusion) String() string {
	return string(i)
}

// Description returns a human-readable description of the predicate.
func (i Inclusion) Description() string {
	switch i {
	case InclusionAll:
		return "All recipes"
	case InclusionVegetarian:
		return "Vegetarian only"
	default:
		return unknownDescription
	}
}
