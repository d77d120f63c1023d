package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsJSON bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags of visible recipes",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "output tags as JSON")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	tags, err := catalogService.TagOptions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if tagsJSON {
		if tags == nil {
			tags = []string{}
		}
		return writeJSON(cmd.OutOrStdout(), tags)
	}

	if len(tags) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tags.")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}
