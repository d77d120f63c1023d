// Package domain defines the core business entities for recipebook.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Recipe: A catalog entry with locale-mapped fields
//   - RecipeFields: The mutable fields accepted by create and update
//   - Criteria: Text, tag and locale filters for a catalog query
//   - Inclusion: The base predicate deciding default visibility
//   - AppSettings: Display, catalog and storage preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
