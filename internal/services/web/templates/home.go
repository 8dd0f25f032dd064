package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HeroParams carries the homepage hero copy.
type HeroParams struct {
	AppName  string
	Tagline  string
	CTAURL   string
	CTALabel string
}

// Hero renders the homepage hero banner.
func Hero(params HeroParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="hero"><h1>`)
		b.WriteString(templ.EscapeString(params.AppName))
		b.WriteString(`</h1><p>`)
		b.WriteString(templ.EscapeString(params.Tagline))
		b.WriteString(`</p>`)
		if strings.TrimSpace(params.CTAURL) != "" {
			b.WriteString(`<a class="cta" href="`)
			b.WriteString(templ.EscapeString(params.CTAURL))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(params.CTALabel))
			b.WriteString(`</a>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HomeBody composes the hero and the feature section into the homepage body.
func HomeBody(hero HeroParams, features []FeatureItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Hero(hero).Render(ctx, w); err != nil {
			return err
		}
		return FeatureList(features).Render(ctx, w)
	})
}
