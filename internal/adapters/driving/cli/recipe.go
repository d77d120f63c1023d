package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
	Long:  `List, view, add, edit, delete or copy recipes.`,
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible recipes",
	Args:  cobra.NoArgs,
	RunE:  runRecipeList,
}

var recipeGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeGet,
}

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	Long: `Add a recipe from flags or from a YAML or JSON file.

Text flags set the language chosen with --locale. Name, image, at least
one ingredient and instructions are required.

Examples:
  recipebook recipe add --name "Lemon Rice" --image https://example.com/r.jpg \
    --ingredient Rice --ingredient Lemon --instructions "Temper and toss." \
    --tag Rice --vegetarian

  recipebook recipe add --file lemon-rice.yaml`,
	Args: cobra.NoArgs,
	RunE: runRecipeAdd,
}

var recipeEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a recipe",
	Long: `Edit a recipe. Only the flags given are changed; text flags change the
language chosen with --locale and leave other languages untouched.
--file replaces every field.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecipeEdit,
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeDelete,
}

var recipeCopyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copy a recipe name to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeCopy,
}

var (
	recipeLocale string
	recipeJSON   bool
	recipeYes    bool
	recipeFile   string

	recipeName         string
	recipeDescription  string
	recipeImage        string
	recipeInstructions string
	recipeTags         []string
	recipeIngredients  []string
	recipeBenefits     []string
	recipeVegetarian   bool
)

func init() {
	for _, c := range []*cobra.Command{recipeListCmd, recipeGetCmd, recipeAddCmd, recipeEditCmd, recipeCopyCmd} {
		c.Flags().StringVarP(&recipeLocale, "locale", "l", "", "language (default from settings)")
	}
	recipeListCmd.Flags().BoolVar(&recipeJSON, "json", false, "output as JSON")
	recipeGetCmd.Flags().BoolVar(&recipeJSON, "json", false, "output every language as JSON")

	for _, c := range []*cobra.Command{recipeAddCmd, recipeEditCmd} {
		c.Flags().StringVarP(&recipeFile, "file", "f", "", "read the recipe from a YAML or JSON file")
		c.Flags().StringVar(&recipeName, "name", "", "recipe name")
		c.Flags().StringVar(&recipeDescription, "description", "", "short summary")
		c.Flags().StringVar(&recipeImage, "image", "", "image URL")
		c.Flags().StringVar(&recipeInstructions, "instructions", "", "preparation steps")
		c.Flags().StringSliceVar(&recipeTags, "tag", nil, "category label (repeatable)")
		c.Flags().StringArrayVar(&recipeIngredients, "ingredient", nil, "ingredient line (repeatable)")
		c.Flags().StringArrayVar(&recipeBenefits, "benefit", nil, "health note (repeatable)")
		c.Flags().BoolVar(&recipeVegetarian, "vegetarian", false, "mark the recipe vegetarian")
	}

	recipeDeleteCmd.Flags().BoolVarP(&recipeYes, "yes", "y", false, "delete without asking")

	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeGetCmd)
	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeEditCmd)
	recipeCmd.AddCommand(recipeDeleteCmd)
	recipeCmd.AddCommand(recipeCopyCmd)
	rootCmd.AddCommand(recipeCmd)
}

func runRecipeList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	recipes, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	views := project(recipes, resolveLocale(recipeLocale))
	if recipeJSON {
		return writeJSON(cmd.OutOrStdout(), views)
	}
	printRecipes(cmd.OutOrStdout(), views)
	return nil
}

func runRecipeGet(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	recipe, err := catalogService.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	if recipeJSON {
		return writeJSON(cmd.OutOrStdout(), recipe)
	}
	view := recipe.Project(resolveLocale(recipeLocale))
	printRecipe(cmd.OutOrStdout(), &view)
	return nil
}

func runRecipeAdd(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	var fields domain.RecipeFields
	if recipeFile != "" {
		f, err := readFieldsFile(recipeFile)
		if err != nil {
			return err
		}
		fields = f
	} else {
		fields = domain.RecipeFields{
			Name:         domain.LocalizedText{},
			Description:  domain.LocalizedText{},
			Ingredients:  domain.LocalizedList{},
			Instructions: domain.LocalizedText{},
			Vegetarian:   catalogService.Inclusion() == domain.InclusionVegetarian,
		}
		applyFieldFlags(cmd, &fields, resolveLocale(recipeLocale))
	}

	recipe, err := catalogService.Create(cmd.Context(), fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %d: %s\n", recipe.ID, recipe.Name.Get(resolveLocale(recipeLocale)))
	return nil
}

func runRecipeEdit(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var fields domain.RecipeFields
	if recipeFile != "" {
		fields, err = readFieldsFile(recipeFile)
		if err != nil {
			return err
		}
	} else {
		existing, err := catalogService.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		fields = existing.Fields()
		applyFieldFlags(cmd, &fields, resolveLocale(recipeLocale))
	}

	recipe, err := catalogService.Update(cmd.Context(), id, fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %d: %s\n", recipe.ID, recipe.Name.Get(resolveLocale(recipeLocale)))
	return nil
}

// applyFieldFlags copies the flags the user set onto fields. Localised
// values are written to locale only.
func applyFieldFlags(cmd *cobra.Command, fields *domain.RecipeFields, locale domain.Locale) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		fields.Name[locale] = recipeName
	}
	if flags.Changed("description") {
		fields.Description[locale] = recipeDescription
	}
	if flags.Changed("image") {
		fields.Image = recipeImage
	}
	if flags.Changed("instructions") {
		fields.Instructions[locale] = recipeInstructions
	}
	if flags.Changed("ingredient") {
		fields.Ingredients[locale] = recipeIngredients
	}
	if flags.Changed("tag") {
		fields.Tags = recipeTags
	}
	if flags.Changed("benefit") {
		fields.Benefits = recipeBenefits
	}
	if flags.Changed("vegetarian") {
		fields.Vegetarian = recipeVegetarian
	}
}

// readFieldsFile decodes one recipe from YAML or JSON.
func readFieldsFile(path string) (domain.RecipeFields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RecipeFields{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fields domain.RecipeFields
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return domain.RecipeFields{}, fmt.Errorf("%w: decoding %s: %v", domain.ErrInvalidInput, path, err)
	}
	return fields, nil
}

func runRecipeDelete(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	recipe, err := catalogService.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	name := recipe.Name.Get(resolveLocale(""))

	if !recipeYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to delete recipe %d without --yes", id)
		}
		if !confirm(cmd, fmt.Sprintf("Delete recipe %d (%s)? [y/N]: ", id, name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := catalogService.Delete(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d: %s\n", id, name)
	return nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func runRecipeCopy(cmd *cobra.Command, args []string) error {
	if actionService == nil {
		return errNoActions
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	name, err := actionService.CopyName(cmd.Context(), id, resolveLocale(recipeLocale))
	if err != nil {
		return fmt.Errorf("failed to copy name: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Copied: %s\n", name)
	return nil
}
