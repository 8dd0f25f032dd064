package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// FeatureItem describes one homepage highlight card.
type FeatureItem struct {
	// Title is the short card heading.
	Title string
	// Icon is the resolved asset href for the card illustration. It is
	// produced by the asset registry at startup, never at render time.
	Icon string
	// Description is the supporting paragraph under the title.
	Description string
}

// FeatureList renders one card per item into the homepage feature section.
//
// Rendering is a pure single pass over the input: element i always maps to
// visual position i, an empty slice renders an empty grid, and repeated
// renders of the same input produce identical output. Row wrapping is a
// stylesheet concern; the component emits a flat ordered sequence of cards.
func FeatureList(items []FeatureItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="features"><div class="feature-grid">`); err != nil {
			return err
		}
		for _, item := range items {
			if err := writeFeatureCard(w, item); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

func writeFeatureCard(w io.Writer, item FeatureItem) error {
	var b strings.Builder
	b.WriteString(`<article class="feature-card">`)
	if strings.TrimSpace(item.Icon) != "" {
		b.WriteString(`<img class="feature-icon" src="`)
		b.WriteString(templ.EscapeString(item.Icon))
		b.WriteString(`" alt="" loading="lazy">`)
	}
	b.WriteString(`<h3>`)
	b.WriteString(templ.EscapeString(item.Title))
	b.WriteString(`</h3><p>`)
	b.WriteString(templ.EscapeString(item.Description))
	b.WriteString(`</p></article>`)
	_, err := io.WriteString(w, b.String())
	return err
}
