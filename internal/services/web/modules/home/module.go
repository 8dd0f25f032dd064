// Package home serves the marketing homepage and the health endpoint.
package home

import (
	"net/http"

	"github.com/stageproof/stageproof.dev/internal/platform/assets/registry"
	module "github.com/stageproof/stageproof.dev/internal/services/web/module"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
)

// Config carries homepage content inputs.
type Config struct {
	AppName string
	Tagline string
	// Icons resolves logical feature icon names to static hrefs.
	Icons *registry.Registry
}

// Module provides the root routes.
type Module struct {
	config Config
}

// New returns the homepage module.
func New(config Config) Module {
	return Module{config: config}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "home"
}

// Mount wires homepage routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	svc, err := newService(m.config.AppName, m.config.Tagline, m.config.Icons)
	if err != nil {
		return module.Mount{}, err
	}
	h := newHandlers(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET "+routepath.Health, h.handleHealth)
	mux.HandleFunc("GET /{rest...}", h.handleNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
