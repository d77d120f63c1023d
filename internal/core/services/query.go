package services

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// Query returns the records matching the inclusion predicate and criteria,
// in input order. Filters apply in this order: inclusion, locale restriction,
// text, tag. It does not modify records.
func Query(records []domain.Recipe, include domain.Inclusion, c domain.Criteria) []domain.Recipe {
	lower := cases.Lower(language.Und)
	needle := lower.String(strings.TrimSpace(c.Text))

	out := make([]domain.Recipe, 0, len(records))
	for i := range records {
		r := &records[i]
		if !include.Includes(r) {
			continue
		}
		if c.LocaleOnly && !r.Name.Has(c.Locale) {
			continue
		}
		if needle != "" && !matchesText(lower, r, needle, c) {
			continue
		}
		if c.Tag != "" && !r.HasTag(c.Tag) {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

func matchesText(lower cases.Caser, r *domain.Recipe, needle string, c domain.Criteria) bool {
	if c.LocaleOnly {
		return containsLower(lower, r.Name[c.Locale], needle) ||
			containsLower(lower, r.Description[c.Locale], needle)
	}
	for _, text := range r.Name {
		if containsLower(lower, text, needle) {
			return true
		}
	}
	for _, text := range r.Description {
		if containsLower(lower, text, needle) {
			return true
		}
	}
	return false
}

func containsLower(lower cases.Caser, haystack, needle string) bool {
	return haystack != "" && strings.Contains(lower.String(haystack), needle)
}

// TagUniverse returns the sorted, deduplicated union of tags across the
// records admitted by the inclusion predicate.
func TagUniverse(records []domain.Recipe, include domain.Inclusion) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for i := range records {
		if !include.Includes(&records[i]) {
			continue
		}
		for _, t := range records[i].Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}
