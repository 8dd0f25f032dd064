// Package templates holds the hand-written templ components for the site.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/stageproof/stageproof.dev/internal/platform/branding"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
)

// PageContext carries per-request page chrome data.
type PageContext struct {
	// Lang is the resolved language tag for the html element.
	Lang string
	// Title is the page title, composed with the brand suffix.
	Title string
	// MetaDescription fills the description meta tag.
	MetaDescription string
	// CurrentPath is the request path, used for nav state.
	CurrentPath string
}

// ComposePageTitle appends the brand suffix unless already present.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

// SiteLayout wraps child content in the shared page chrome.
//
// The body component is supplied through templ children, matching how
// handlers compose pages: templ.WithChildren(ctx, body) then Render.
func SiteLayout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="`)
		b.WriteString(templ.EscapeString(lang))
		b.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(templ.EscapeString(ComposePageTitle(page.Title)))
		b.WriteString(`</title>`)
		if desc := strings.TrimSpace(page.MetaDescription); desc != "" {
			b.WriteString(`<meta name="description" content="`)
			b.WriteString(templ.EscapeString(desc))
			b.WriteString(`">`)
		}
		b.WriteString(`<link rel="stylesheet" href="/static/site.css"><script src="/static/site.js" defer></script></head><body>`)
		b.WriteString(`<header class="site-header"><a class="brand" href="`)
		b.WriteString(routepath.Root)
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(branding.AppName))
		b.WriteString(`</a><nav class="site-nav"><a href="`)
		b.WriteString(routepath.DocsIndex)
		b.WriteString(`">Docs</a><a href="`)
		b.WriteString(templ.EscapeString(branding.SourceURL))
		b.WriteString(`">GitHub</a></nav></header><main>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		footer := `</main><footer class="site-footer">` +
			templ.EscapeString(branding.AppName) +
			` · Built with care for people who ship.</footer></body></html>`
		_, err := io.WriteString(w, footer)
		return err
	})
}

// ErrorState renders the themed error body for a status code.
func ErrorState(status int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		message := "Something went wrong."
		if status == 404 {
			message = "This page does not exist."
		}
		var b strings.Builder
		b.WriteString(`<div class="error-state"><h1>`)
		b.WriteString(templ.EscapeString(errorTitle(status)))
		b.WriteString(`</h1><p>`)
		b.WriteString(templ.EscapeString(message))
		b.WriteString(`</p><p><a href="`)
		b.WriteString(routepath.Root)
		b.WriteString(`">Back to the homepage</a></p></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func errorTitle(status int) string {
	switch status {
	case 404:
		return "404 Not Found"
	default:
		return "Unexpected error"
	}
}
