package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// validFields returns create/update input that passes validation.
func validFields(name string, tags ...string) domain.RecipeFields {
	return domain.RecipeFields{
		Name:         domain.Text(name),
		Image:        "images/" + name + ".jpg",
		Tags:         tags,
		Ingredients:  domain.LocalizedList{domain.LocaleEnglish: {"salt"}},
		Instructions: domain.Text("Cook."),
		Vegetarian:   true,
	}
}

// fixtureRecipes builds records with ids 1..n from the given names.
func fixtureRecipes(names ...string) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(names))
	for i, name := range names {
		out = append(out, domain.NewRecipe(domain.RecipeID(i+1), validFields(name)))
	}
	return out
}

// staticSeed returns a SeedFunc yielding copies of records.
func staticSeed(records ...domain.Recipe) SeedFunc {
	return func() ([]domain.Recipe, error) {
		return cloneRecords(records), nil
	}
}

func recipeIDs(records []domain.Recipe) []domain.RecipeID {
	ids := make([]domain.RecipeID, 0, len(records))
	for i := range records {
		ids = append(ids, records[i].ID)
	}
	return ids
}

var errBackend = errors.New("disk on fire")

// flakyKV is a KeyValueStore whose reads and writes can be made to fail.
type flakyKV struct {
	mu      sync.Mutex
	values  map[string][]byte
	getErr  error
	putErr  error
	puts    int
	lastPut []byte
}

func newFlakyKV() *flakyKV {
	return &flakyKV{values: make(map[string][]byte)}
}

func (f *flakyKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (f *flakyKV) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.lastPut = append([]byte(nil), value...)
	f.values[key] = append([]byte(nil), value...)
	return nil
}

func (f *flakyKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *flakyKV) Close() error { return nil }
