package docs

import (
	"strings"

	"github.com/stageproof/stageproof.dev/internal/services/web/content"
	apperrors "github.com/stageproof/stageproof.dev/internal/services/web/platform/errors"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
	"github.com/stageproof/stageproof.dev/internal/services/web/templates"
)

type service struct {
	pages  []content.Page
	bySlug map[string]content.Page
}

func newService(pages []content.Page) service {
	bySlug := make(map[string]content.Page, len(pages))
	for _, page := range pages {
		bySlug[page.Slug] = page
	}
	return service{pages: pages, bySlug: bySlug}
}

func (s service) page(slug string) (content.Page, error) {
	page, ok := s.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return content.Page{}, apperrors.E(apperrors.KindNotFound, "documentation page not found")
	}
	return page, nil
}

// nav builds the sidebar in corpus order, marking the active slug.
func (s service) nav(activeSlug string) []templates.DocsNavItem {
	items := make([]templates.DocsNavItem, 0, len(s.pages))
	for _, page := range s.pages {
		items = append(items, templates.DocsNavItem{
			Title:  page.Title,
			URL:    routepath.Doc(page.Slug),
			Active: page.Slug == activeSlug,
		})
	}
	return items
}
