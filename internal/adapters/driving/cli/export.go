package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/export"
	"github.com/custodia-labs/recipebook/internal/core/domain"
)

var (
	exportFormat string
	exportOutput string
	exportLocale string

	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export visible recipes",
	Long: `Export visible recipes as JSON, YAML, XLSX or an HTML page.

JSON and YAML keep every language and can be imported again. XLSX and
HTML are written in one language (--locale). Without --format the format
is taken from the --output extension, or JSON when writing to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import recipes from a JSON or YAML export",
	Long: `Import recipes from a file written by 'recipebook export'. Every entry
is added as a new recipe with a fresh id; ids in the file are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "",
		"output format: "+formatList())
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default stdout)")
	exportCmd.Flags().StringVarP(&exportLocale, "locale", "l", "", "language for xlsx and html (default from settings)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "input format: json or yaml (default from extension)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func formatList() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func exportFormatFor() (export.Format, error) {
	switch {
	case exportFormat != "":
		return export.ParseFormat(exportFormat)
	case exportOutput != "":
		return export.FormatFromPath(exportOutput)
	default:
		return export.FormatJSON, nil
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	format, err := exportFormatFor()
	if err != nil {
		return err
	}

	recipes, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	opts := export.Options{
		Locale:       resolveLocale(exportLocale),
		EmptyMessage: emptyMessage(),
	}

	if exportOutput == "" {
		if format == export.FormatXLSX && isTerminal(cmd.OutOrStdout()) {
			return errors.New("refusing to write xlsx to a terminal; use --output")
		}
		return export.Write(cmd.OutOrStdout(), format, recipes, opts)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, recipes, opts); err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d recipes to %s\n", len(recipes), exportOutput)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	path := args[0]
	format, err := importFormatFor(path)
	if err != nil {
		return err
	}
	if !format.Importable() {
		return fmt.Errorf("%w: cannot import %s", export.ErrUnsupportedFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := export.Read(f, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	imported := 0
	for i := range entries {
		recipe, err := catalogService.Create(cmd.Context(), entries[i])
		if err != nil {
			fmt.Fprintf(out, "Skipped entry %d: %v\n", i+1, err)
			continue
		}
		imported++
		fmt.Fprintf(out, "Added recipe %d: %s\n", recipe.ID, recipe.Name.Get(domain.DefaultLocale))
	}

	fmt.Fprintf(out, "Imported %d of %d recipes\n", imported, len(entries))
	if imported < len(entries) {
		return fmt.Errorf("%d of %d recipes failed to import", len(entries)-imported, len(entries))
	}
	return nil
}

func importFormatFor(path string) (export.Format, error) {
	if importFormat != "" {
		return export.ParseFormat(importFormat)
	}
	return export.FormatFromPath(path)
}
