package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Locale is a BCP 47 language tag such as "en" or "ta".
type Locale string

// Known locales.
const (
	// LocaleEnglish is English.
	LocaleEnglish Locale = "en"

	// LocaleTamil is Tamil.
	LocaleTamil Locale = "ta"

	// DefaultLocale is used when a field lacks the requested locale.
	DefaultLocale = LocaleEnglish
)

// String returns the string representation.
func (l Locale) String() string {
	return string(l)
}

// Description returns a human-readable name for known locales.
func (l Locale) Description() string {
	switch l {
	case LocaleEnglish:
		return "English"
	case LocaleTamil:
		return "தமிழ் (Tamil)"
	default:
		return string(l)
	}
}

// LocalizedText maps a locale to a string value.
type LocalizedText map[Locale]string

// Text returns a LocalizedText holding a single value for the default locale.
func Text(value string) LocalizedText {
	return LocalizedText{DefaultLocale: value}
}

// Get returns the value for locale, falling back to DefaultLocale and then
// to the first locale in sorted order. Returns "" when empty.
func (t LocalizedText) Get(locale Locale) string {
	if v, ok := t[locale]; ok {
		return v
	}
	if v, ok := t[DefaultLocale]; ok {
		return v
	}
	for _, l := range t.Locales() {
		return t[l]
	}
	return ""
}

// Has reports whether the locale has a non-blank value.
func (t LocalizedText) Has(locale Locale) bool {
	return strings.TrimSpace(t[locale]) != ""
}

// Locales returns the locales present, sorted.
func (t LocalizedText) Locales() []Locale {
	out := make([]Locale, 0, len(t))
	for l := range t {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEmpty reports whether no locale has a non-blank value.
func (t LocalizedText) IsEmpty() bool {
	for _, v := range t {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Clone returns a copy of the map. A nil map clones to an empty map.
func (t LocalizedText) Clone() LocalizedText {
	out := make(LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// UnmarshalJSON accepts either a locale map or a plain string. A plain
// string is stored under DefaultLocale.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = textFromString(s)
		return nil
	}
	var m map[Locale]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = m
	return nil
}

// UnmarshalYAML accepts either a locale map or a plain scalar.
func (t *LocalizedText) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[Locale]string
	if err := unmarshal(&m); err == nil {
		*t = m
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*t = textFromString(s)
	return nil
}

func textFromString(s string) LocalizedText {
	if strings.TrimSpace(s) == "" {
		return LocalizedText{}
	}
	return LocalizedText{DefaultLocale: s}
}

func (t LocalizedText) trimmed() LocalizedText {
	out := make(LocalizedText, len(t))
	for k, v := range t {
		k = Locale(strings.TrimSpace(string(k)))
		if v = strings.TrimSpace(v); k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}

// LocalizedList maps a locale to an ordered list of strings.
type LocalizedList map[Locale][]string

// Get returns the list for locale with the same fallback as LocalizedText.
// The returned slice is a copy.
func (l LocalizedList) Get(locale Locale) []string {
	if v, ok := l[locale]; ok {
		return cloneStrings(v)
	}
	if v, ok := l[DefaultLocale]; ok {
		return cloneStrings(v)
	}
	for _, loc := range l.Locales() {
		return cloneStrings(l[loc])
	}
	return []string{}
}

// Locales returns the locales present, sorted.
func (l LocalizedList) Locales() []Locale {
	out := make([]Locale, 0, len(l))
	for loc := range l {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEmpty reports whether no locale has a non-blank entry.
func (l LocalizedList) IsEmpty() bool {
	for _, items := range l {
		for _, s := range items {
			if strings.TrimSpace(s) != "" {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy. A nil map clones to an empty map.
func (l LocalizedList) Clone() LocalizedList {
	out := make(LocalizedList, len(l))
	for k, v := range l {
		out[k] = cloneStrings(v)
	}
	return out
}

// UnmarshalJSON accepts either a locale map or a plain list. A plain list
// is stored under DefaultLocale.
func (l *LocalizedList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = LocalizedList{DefaultLocale: items}
		return nil
	}
	var m map[Locale][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*l = m
	return nil
}

// UnmarshalYAML accepts either a locale map or a plain sequence.
func (l *LocalizedList) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[Locale][]string
	if err := unmarshal(&m); err == nil {
		*l = m
		return nil
	}
	var items []string
	if err := unmarshal(&items); err != nil {
		return err
	}
	*l = LocalizedList{DefaultLocale: items}
	return nil
}

func (l LocalizedList) trimmed() LocalizedList {
	out := make(LocalizedList, len(l))
	for k, v := range l {
		k = Locale(strings.TrimSpace(string(k)))
		if items := nonEmptyTrimmed(v); k != "" && len(items) > 0 {
			out[k] = items
		}
	}
	return out
}
