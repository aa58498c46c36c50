// Package card renders post summaries as list items.
package card

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-folio/internal/posts"
)

//go:embed card.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "card.tmpl"))

// Props is everything a card needs to render.
type Props struct {
	Href     string
	Fields   posts.DisplayFields
	Datetime posts.DatetimeView
	// SubHeading renders the title as h3 instead of h2.
	SubHeading bool
}

// NewProps builds card props and formats the datetime with opts.
func NewProps(href string, fields posts.DisplayFields, opts posts.DatetimeOptions) Props {
	return Props{
		Href:     href,
		Fields:   fields,
		Datetime: posts.FormatDatetime(fields, opts),
	}
}

// view is the template data for one card.
type view struct {
	Props
	HasImage  bool
	Image     string
	SlugStyle template.CSS
}

func newView(props Props) view {
	v := view{Props: props}
	if props.Fields.ImageVisible && props.Fields.ImageSrc != nil {
		v.HasImage = true
		v.Image = *props.Fields.ImageSrc
	}
	// Slug IDs only hold [a-z0-9-], so the declaration needs no filtering.
	if props.Fields.SlugID != "" {
		v.SlugStyle = template.CSS("view-transition-name: " + props.Fields.SlugID)
	}
	return v
}

// Card returns a component rendering one <li> card.
func Card(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return templates.ExecuteTemplate(w, "card", newView(props))
	})
}

// List returns a component rendering cards inside a <ul>.
func List(items []Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		views := make([]view, len(items))
		for i, item := range items {
			views[i] = newView(item)
		}
		return templates.ExecuteTemplate(w, "list", views)
	})
}
