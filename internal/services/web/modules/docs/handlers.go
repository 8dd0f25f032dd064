package docs

import (
	"net/http"

	apperrors "github.com/stageproof/stageproof.dev/internal/services/web/platform/errors"
	"github.com/stageproof/stageproof.dev/internal/services/web/platform/pagerender"
	"github.com/stageproof/stageproof.dev/internal/services/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	lang := pagerender.ResolveLang(w, r)
	page := templates.PageContext{
		Lang:            lang,
		Title:           "Documentation",
		MetaDescription: "Guides and reference for StageProof visual testing.",
		CurrentPath:     r.URL.Path,
	}
	_ = pagerender.WritePage(w, r, http.StatusOK, page, templates.DocsIndex(h.service.nav("")))
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	doc, err := h.service.page(slug)
	if err != nil {
		h.writeErrorPage(w, r, apperrors.HTTPStatus(err))
		return
	}
	lang := pagerender.ResolveLang(w, r)
	page := templates.PageContext{
		Lang:        lang,
		Title:       doc.Title,
		CurrentPath: r.URL.Path,
	}
	_ = pagerender.WritePage(w, r, http.StatusOK, page, templates.DocsPage(h.service.nav(doc.Slug), doc.Title, doc.HTML))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeErrorPage(w, r, http.StatusNotFound)
}

func (h handlers) writeErrorPage(w http.ResponseWriter, r *http.Request, status int) {
	lang := pagerender.ResolveLang(w, r)
	page := templates.PageContext{
		Lang:        lang,
		Title:       "Not Found",
		CurrentPath: r.URL.Path,
	}
	_ = pagerender.WritePage(w, r, status, page, templates.ErrorState(status))
}
