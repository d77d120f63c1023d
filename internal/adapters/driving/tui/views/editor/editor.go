// Package editor provides the create/edit form for recipes. Localised
// fields are edited in the session locale; other locales are kept as they
// were.
package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/commands"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/recipebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driving"
)

// Field identifies a form field.
type Field int

// Form fields in focus order.
const (
	FieldName Field = iota
	FieldDescription
	FieldImage
	FieldTags
	FieldIngredients
	FieldInstructions
	FieldBenefits
	FieldVegetarian
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldName:         "Name",
	FieldDescription:  "Description",
	FieldImage:        "Image URL",
	FieldTags:         "Tags (comma separated)",
	FieldIngredients:  "Ingredients (one per line)",
	FieldInstructions: "Instructions",
	FieldBenefits:     "Benefits (one per line)",
	FieldVegetarian:   "Vegetarian",
}

// validationFields maps ValidationError.Field to the form field.
var validationFields = map[string]Field{
	"name":         FieldName,
	"image":        FieldImage,
	"ingredients":  FieldIngredients,
	"instructions": FieldInstructions,
}

// View is the recipe editor form.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService
	session *session.Session
	ctx     context.Context

	name         textinput.Model
	description  textinput.Model
	image        textinput.Model
	tags         textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	benefits     textarea.Model
	vegetarian   bool

	base   domain.RecipeFields
	locale domain.Locale
	focus  Field
	saving bool
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a new editor view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	sess *session.Session,
	catalog driving.CatalogService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if sess == nil {
		sess = session.New(domain.DefaultLocale)
	}

	v := &View{
		styles:       s,
		keymap:       km,
		catalog:      catalog,
		session:      sess,
		ctx:          context.Background(),
		name:         newInput("Recipe name", 120),
		description:  newInput("Short summary", 240),
		image:        newInput("https://...", 512),
		tags:         newInput("Main, Festive", 240),
		ingredients:  newArea("Rice\nSalt"),
		instructions: newArea("How to cook it"),
		benefits:     newArea("Optional"),
		width:        80,
		height:       24,
	}
	v.Load(nil)
	return v
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 60
	return ti
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(60)
	ta.SetHeight(4)
	return ta
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Load fills the form from recipe, or clears it for a new recipe when
// recipe is nil. The session records which recipe is being edited.
func (v *View) Load(recipe *domain.Recipe) {
	v.locale = v.session.Locale()
	v.err = nil
	v.saving = false

	if recipe == nil {
		v.session.StartCreate()
		v.base = domain.RecipeFields{}
	} else {
		v.session.StartEdit(recipe.ID)
		v.base = recipe.Fields()
	}

	v.name.SetValue(v.base.Name[v.locale])
	v.description.SetValue(v.base.Description[v.locale])
	v.image.SetValue(v.base.Image)
	v.tags.SetValue(strings.Join(v.base.Tags, ", "))
	v.ingredients.SetValue(strings.Join(v.base.Ingredients[v.locale], "\n"))
	v.instructions.SetValue(v.base.Instructions[v.locale])
	v.benefits.SetValue(strings.Join(v.base.Benefits, "\n"))
	v.vegetarian = v.base.Vegetarian
	if recipe == nil && v.catalog != nil {
		// New recipes start visible in a vegetarian catalog.
		v.vegetarian = v.catalog.Inclusion() == domain.InclusionVegetarian
	}

	v.setFocus(FieldName)
}

// Fields returns the form contents merged into the loaded recipe. Other
// locales of localised fields are preserved.
func (v *View) Fields() domain.RecipeFields {
	f := domain.RecipeFields{
		Name:         setText(v.base.Name, v.locale, v.name.Value()),
		Image:        v.image.Value(),
		Description:  setText(v.base.Description, v.locale, v.description.Value()),
		Tags:         strings.Split(v.tags.Value(), ","),
		Ingredients:  v.base.Ingredients.Clone(),
		Instructions: setText(v.base.Instructions, v.locale, v.instructions.Value()),
		Vegetarian:   v.vegetarian,
		Benefits:     strings.Split(v.benefits.Value(), "\n"),
	}

	items := strings.Split(v.ingredients.Value(), "\n")
	if strings.TrimSpace(v.ingredients.Value()) == "" {
		delete(f.Ingredients, v.locale)
	} else {
		f.Ingredients[v.locale] = items
	}
	return f
}

func setText(base domain.LocalizedText, locale domain.Locale, value string) domain.LocalizedText {
	out := base.Clone()
	if strings.TrimSpace(value) == "" {
		delete(out, locale)
	} else {
		out[locale] = value
	}
	return out
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.setFocus(FieldName)
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecipeSaved:
		v.saving = false
		if msg.Err != nil {
			v.err = msg.Err
			var verr *domain.ValidationError
			if errors.As(msg.Err, &verr) {
				if f, ok := validationFields[verr.Field]; ok {
					return v, v.setFocus(f)
				}
			}
			return v, nil
		}
		v.err = nil
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back):
		if v.session.Editing() {
			return v, commands.ChangeView(messages.ViewDetail)
		}
		return v, commands.ChangeView(messages.ViewCatalog)

	case keymap.Matches(key, v.keymap.Save):
		if v.saving {
			return v, nil
		}
		v.saving = true
		return v, commands.SaveRecipe(v.ctx, v.catalog, v.session.EditingID(), v.Fields())

	case keymap.Matches(key, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % fieldCount)

	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	switch v.focus {
	case FieldVegetarian:
		if key == " " || key == "enter" {
			v.vegetarian = !v.vegetarian
		}
	case FieldIngredients:
		v.ingredients, cmd = v.ingredients.Update(msg)
	case FieldInstructions:
		v.instructions, cmd = v.instructions.Update(msg)
	case FieldBenefits:
		v.benefits, cmd = v.benefits.Update(msg)
	default:
		if msg.Type == tea.KeyEnter {
			return v, v.setFocus(v.focus + 1)
		}
		in := v.input(v.focus)
		*in, cmd = in.Update(msg)
	}
	return v, cmd
}

func (v *View) input(f Field) *textinput.Model {
	switch f {
	case FieldDescription:
		return &v.description
	case FieldImage:
		return &v.image
	case FieldTags:
		return &v.tags
	default:
		return &v.name
	}
}

func (v *View) setFocus(f Field) tea.Cmd {
	v.focus = f
	v.name.Blur()
	v.description.Blur()
	v.image.Blur()
	v.tags.Blur()
	v.ingredients.Blur()
	v.instructions.Blur()
	v.benefits.Blur()

	switch f {
	case FieldName, FieldDescription, FieldImage, FieldTags:
		return v.input(f).Focus()
	case FieldIngredients:
		return v.ingredients.Focus()
	case FieldInstructions:
		return v.instructions.Focus()
	case FieldBenefits:
		return v.benefits.Focus()
	}
	return nil
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := "New recipe"
	if v.session.Editing() {
		title = "Edit recipe"
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render("[" + v.locale.Description() + "]"))
	b.WriteString("\n\n")

	for f := Field(0); f < fieldCount; f++ {
		b.WriteString(v.renderField(f))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] Next field  [ctrl+s] Save  [esc] Cancel"))
	return b.String()
}

func (v *View) renderField(f Field) string {
	label := v.styles.Muted.Render(fieldLabels[f])
	if f == v.focus {
		label = v.styles.Subtitle.Render(fieldLabels[f])
	}

	var body string
	switch f {
	case FieldVegetarian:
		box := "[ ]"
		if v.vegetarian {
			box = "[x]"
		}
		body = box + " " + v.styles.Muted.Render("space to toggle")
	case FieldIngredients:
		body = v.ingredients.View()
	case FieldInstructions:
		body = v.instructions.View()
	case FieldBenefits:
		body = v.benefits.View()
	default:
		body = v.input(f).View()
	}

	frame := v.styles.InputField
	if f == v.focus {
		frame = v.styles.FocusedField
	}
	return label + "\n" + frame.Render(body)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	w := width - 8
	if w < 20 {
		w = 20
	}
	v.name.Width = w
	v.description.Width = w
	v.image.Width = w
	v.tags.Width = w
	v.ingredients.SetWidth(w)
	v.instructions.SetWidth(w)
	v.benefits.SetWidth(w)
}

// Focus returns the focused field.
func (v *View) Focus() Field {
	return v.focus
}

// Locale returns the locale being edited.
func (v *View) Locale() domain.Locale {
	return v.locale
}

// Err returns the last save error, if any.
func (v *View) Err() error {
	return v.err
}
