// Package docs serves the documentation corpus.
package docs

import (
	"net/http"

	"github.com/stageproof/stageproof.dev/internal/services/web/content"
	module "github.com/stageproof/stageproof.dev/internal/services/web/module"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
)

// Module provides documentation routes.
type Module struct {
	pages []content.Page
}

// New returns a docs module serving the given corpus.
func New(pages []content.Page) Module {
	return Module{pages: pages}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "docs"
}

// Mount wires docs routes under the docs prefix.
func (m Module) Mount() (module.Mount, error) {
	h := newHandlers(newService(m.pages))

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.DocsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc("GET "+routepath.DocPattern, h.handlePage)
	mux.HandleFunc("GET "+routepath.DocsPrefix+"{slug}/{rest...}", h.handleNotFound)
	return module.Mount{Prefix: routepath.DocsPrefix, Handler: mux}, nil
}
