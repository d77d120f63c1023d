package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

var (
	searchTag        string
	searchLocale     string
	searchLocaleOnly bool
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search recipes",
	Long: `Search visible recipes by name and description.

Text matches case-insensitively as a substring in any language. With
--locale-only, only recipes named in --locale are considered and text is
matched in that language alone. --tag keeps recipes carrying that exact
tag; run 'recipebook tags' to list them.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchTag, "tag", "t", "", "exact tag to filter by")
	searchCmd.Flags().StringVarP(&searchLocale, "locale", "l", "", "language for results (default from settings)")
	searchCmd.Flags().BoolVar(&searchLocaleOnly, "locale-only", false, "only recipes named in the locale")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	locale := resolveLocale(searchLocale)
	results, err := catalogService.Search(cmd.Context(), domain.Criteria{
		Text:       strings.Join(args, " "),
		Tag:        searchTag,
		Locale:     locale,
		LocaleOnly: searchLocaleOnly,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	views := project(results, locale)
	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), views)
	}
	printRecipes(cmd.OutOrStdout(), views)
	return nil
}
