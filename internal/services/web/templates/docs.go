package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// DocsNavItem is one sidebar entry in corpus order.
type DocsNavItem struct {
	Title  string
	URL    string
	Active bool
}

// DocsPage renders one documentation page with the sidebar.
//
// bodyHTML is trusted output of the markdown renderer over embedded
// first-party content; it is inserted without re-escaping.
func DocsPage(nav []DocsNavItem, title string, bodyHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="docs-layout">`); err != nil {
			return err
		}
		if err := docsSidebar(nav).Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(`<article class="docs-body"><h1>`)
		b.WriteString(templ.EscapeString(title))
		b.WriteString(`</h1>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := templ.Raw(bodyHTML).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</article></div>`)
		return err
	})
}

// DocsIndex renders the documentation landing page.
func DocsIndex(nav []DocsNavItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="docs-layout">`); err != nil {
			return err
		}
		if err := docsSidebar(nav).Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(`<article class="docs-body"><h1>Documentation</h1><ul>`)
		for _, item := range nav {
			b.WriteString(`<li><a href="`)
			b.WriteString(templ.EscapeString(item.URL))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(item.Title))
			b.WriteString(`</a></li>`)
		}
		b.WriteString(`</ul></article></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func docsSidebar(nav []DocsNavItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<nav class="docs-sidebar"><ul>`)
		for _, item := range nav {
			b.WriteString(`<li><a`)
			if item.Active {
				b.WriteString(` class="active"`)
			}
			b.WriteString(` href="`)
			b.WriteString(templ.EscapeString(item.URL))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(item.Title))
			b.WriteString(`</a></li>`)
		}
		b.WriteString(`</ul></nav>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
