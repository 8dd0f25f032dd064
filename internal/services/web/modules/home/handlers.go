package home

import (
	"net/http"

	"github.com/stageproof/stageproof.dev/internal/services/web/platform/httpx"
	"github.com/stageproof/stageproof.dev/internal/services/web/platform/pagerender"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
	"github.com/stageproof/stageproof.dev/internal/services/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	lang := pagerender.ResolveLang(w, r)
	page := templates.PageContext{
		Lang:            lang,
		Title:           h.service.appName,
		MetaDescription: h.service.tagline,
		CurrentPath:     r.URL.Path,
	}
	body := templates.HomeBody(templates.HeroParams{
		AppName:  h.service.appName,
		Tagline:  h.service.tagline,
		CTAURL:   routepath.DocsIndex,
		CTALabel: "Get Started",
	}, h.service.featureItems())
	_ = pagerender.WritePage(w, r, http.StatusOK, page, body)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, h.service.healthBody())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	lang := pagerender.ResolveLang(w, r)
	page := templates.PageContext{
		Lang:        lang,
		Title:       "Not Found",
		CurrentPath: r.URL.Path,
	}
	_ = pagerender.WritePage(w, r, http.StatusNotFound, page, templates.ErrorState(http.StatusNotFound))
}
