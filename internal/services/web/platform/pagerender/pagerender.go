// Package pagerender renders page bodies into the shared site layout.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/stageproof/stageproof.dev/internal/services/web/i18n"
	"github.com/stageproof/stageproof.dev/internal/services/web/templates"
)

// ResolveLang resolves the request language, persisting an explicit query
// selection as a cookie, and returns the tag string for the html element.
func ResolveLang(w http.ResponseWriter, r *http.Request) string {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return tag.String()
}

// WritePage renders body inside the site layout and writes the full page.
//
// The layout is rendered into a buffer first so template failures surface
// as a clean 500 instead of a truncated response.
func WritePage(w http.ResponseWriter, r *http.Request, status int, page templates.PageContext, body templ.Component) error {
	ctx := templ.WithChildren(r.Context(), body)
	var rendered bytes.Buffer
	if err := templates.SiteLayout(page).Render(ctx, &rendered); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return err
	}
	if status <= 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(rendered.Bytes())
	return nil
}
