package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #fff8f0; color: #2d2a26; }
header { background: #e07a1f; color: #fff; padding: 1rem 2rem; }
#recipes { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1rem; padding: 2rem; }
.card { background: #fff; border-radius: 8px; box-shadow: 0 1px 4px rgba(0,0,0,.12); overflow: hidden; }
.card img { width: 100%; height: 160px; object-fit: cover; }
.card-body { padding: 1rem; }
.tag { display: inline-block; background: #fde6cc; border-radius: 4px; padding: 0 .4rem; margin: 0 .25rem .25rem 0; font-size: .85rem; }
.veg { color: #2e7d32; font-size: .85rem; }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<main id="recipes">
{{- if not .Recipes}}
<p class="empty">{{.EmptyMessage}}</p>
{{- end}}
{{- range .Recipes}}
<article class="card" data-id="{{.ID}}">
  <img alt="{{.Name}}" src="{{.Image}}" />
  <div class="card-body">
    <h3>{{.Name}}</h3>
    {{- if .Vegetarian}}
    <span class="veg">● Vegetarian</span>
    {{- end}}
    <p>{{.Description}}</p>
    <div class="meta">
      {{- range .Tags}}<span class="tag">{{.}}</span>{{end}}
    </div>
    <details class="ingredients">
      <summary>Ingredients</summary>
      <ul>{{range .Ingredients}}<li>{{.}}</li>{{end}}</ul>
      <p class="instructions">{{.Instructions}}</p>
    </details>
    {{- if .Benefits}}
    <details class="benefits">
      <summary>View Benefits</summary>
      <ul>{{range .Benefits}}<li>{{.}}</li>{{end}}</ul>
    </details>
    {{- end}}
  </div>
</article>
{{- end}}
</main>
</body>
</html>
`))

type page struct {
	Lang         string
	Title        string
	EmptyMessage string
	Recipes      []domain.RecipeView
}

func writeHTML(w io.Writer, recipes []domain.Recipe, opts Options) error {
	p := page{
		Lang:         opts.Locale.String(),
		Title:        opts.Title,
		EmptyMessage: opts.EmptyMessage,
		Recipes:      make([]domain.RecipeView, 0, len(recipes)),
	}
	for i := range recipes {
		p.Recipes = append(p.Recipes, recipes[i].Project(opts.Locale))
	}

	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}
