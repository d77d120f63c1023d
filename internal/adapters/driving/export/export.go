// Package export writes the catalog to files and reads recipe fields back
// from them. JSON and YAML carry every locale; XLSX and HTML are projected
// to a single locale for people to read.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// ErrUnsupportedFormat is returned for unknown formats, and for importing
// from a format that is write-only.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names an export file format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatXLSX, FormatHTML}
}

// ParseFormat parses a format name. "yml" and "htm" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Extension returns the file extension for the format, with a dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Importable reports whether recipes can be read back from the format.
func (f Format) Importable() bool {
	return f == FormatJSON || f == FormatYAML
}

// Options controls the projected formats.
type Options struct {
	// Locale selects the language for XLSX and HTML.
	Locale domain.Locale

	// Title heads the HTML page.
	Title string

	// EmptyMessage is shown in HTML when there are no recipes.
	EmptyMessage string
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = domain.DefaultLocale
	}
	if o.Title == "" {
		o.Title = "Recipe Book"
	}
	if o.EmptyMessage == "" {
		o.EmptyMessage = "No recipes found."
	}
	return o
}

// document is the envelope written by JSON and YAML export.
type document struct {
	Version int             `json:"version" yaml:"version"`
	Recipes []domain.Recipe `json:"recipes" yaml:"recipes"`
}

// importDocument reads the envelope without ids.
type importDocument struct {
	Recipes []domain.RecipeFields `json:"recipes" yaml:"recipes"`
}

const documentVersion = 1

// Write encodes recipes to w in the given format.
func Write(w io.Writer, format Format, recipes []domain.Recipe, opts Options) error {
	opts = opts.withDefaults()
	if recipes == nil {
		recipes = []domain.Recipe{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(document{Version: documentVersion, Recipes: recipes}); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Version: documentVersion, Recipes: recipes}); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatXLSX:
		return writeXLSX(w, recipes, opts)
	case FormatHTML:
		return writeHTML(w, recipes, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Read decodes recipe fields from r. Both the export envelope and a bare
// list of recipes are accepted; ids in the input are ignored.
func Read(r io.Reader, format Format) ([]domain.RecipeFields, error) {
	if !format.Importable() {
		return nil, fmt.Errorf("%w: cannot import %s", ErrUnsupportedFormat, format)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var fields []domain.RecipeFields
	if format == FormatJSON {
		fields, err = readJSON(data)
	} else {
		fields, err = readYAML(data)
	}
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func readJSON(data []byte) ([]domain.RecipeFields, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []domain.RecipeFields
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return list, nil
	}

	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return doc.Recipes, nil
}

func readYAML(data []byte) ([]domain.RecipeFields, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []domain.RecipeFields
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		return list, nil
	}

	var doc importDocument
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return doc.Recipes, nil
}
