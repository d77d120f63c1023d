package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// RecipesKey is the storage slot holding the catalog snapshot.
const RecipesKey = "recipes"

// snapshotVersion is the current persisted schema version.
// Version 0 is the original bare JSON array of recipes.
const snapshotVersion = 1

// snapshot is the versioned persisted form of the catalog.
// NextID is the id high-water mark so deleted ids are never reused.
type snapshot struct {
	Version int             `json:"version"`
	NextID  domain.RecipeID `json:"next_id"`
	Recipes []domain.Recipe `json:"recipes"`
}

var (
	errEmptySnapshot      = errors.New("empty snapshot")
	errUnsupportedVersion = errors.New("unsupported snapshot version")
)

// encodeSnapshot serialises the records and id high-water mark.
func encodeSnapshot(records []domain.Recipe, nextID domain.RecipeID) ([]byte, error) {
	snap := snapshot{
		Version: snapshotVersion,
		NextID:  nextID,
		Recipes: records,
	}
	if snap.Recipes == nil {
		snap.Recipes = []domain.Recipe{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses a persisted snapshot. Unknown fields are ignored and
// missing optional fields are filled with empty values. Records with
// non-positive or duplicate ids, or without a name in any locale, make the
// whole snapshot invalid.
func decodeSnapshot(data []byte) ([]domain.Recipe, domain.RecipeID, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, 0, errEmptySnapshot
	}

	var snap snapshot
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &snap.Recipes); err != nil {
			return nil, 0, err
		}
	} else {
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return nil, 0, err
		}
		if snap.Version != snapshotVersion {
			return nil, 0, fmt.Errorf("%w: %d", errUnsupportedVersion, snap.Version)
		}
	}

	records := make([]domain.Recipe, 0, len(snap.Recipes))
	seen := make(map[domain.RecipeID]struct{}, len(snap.Recipes))
	for i := range snap.Recipes {
		r := snap.Recipes[i]
		if r.ID <= 0 {
			return nil, 0, fmt.Errorf("record %d: invalid id %d", i, r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, 0, fmt.Errorf("record %d: duplicate id %d", i, r.ID)
		}
		if r.Name.IsEmpty() {
			return nil, 0, fmt.Errorf("record %d: id %d has no name", i, r.ID)
		}
		seen[r.ID] = struct{}{}
		records = append(records, r.Clone())
	}

	return records, nextIDFor(records, snap.NextID), nil
}

// nextIDFor returns the smallest id that is above every existing id and
// not below the stored high-water mark.
func nextIDFor(records []domain.Recipe, stored domain.RecipeID) domain.RecipeID {
	next := stored
	if next < 1 {
		next = 1
	}
	for i := range records {
		if records[i].ID >= next {
			next = records[i].ID + 1
		}
	}
	return next
}
