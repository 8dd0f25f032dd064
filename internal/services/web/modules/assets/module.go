// Package assets serves embedded static files.
package assets

import (
	"io/fs"
	"net/http"

	module "github.com/stageproof/stageproof.dev/internal/services/web/module"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
)

// Module serves an asset filesystem under the static prefix.
type Module struct {
	assets fs.FS
}

// New returns an assets module for the given filesystem.
func New(assets fs.FS) Module {
	return Module{assets: assets}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "assets"
}

// Mount wires the file server under the static prefix.
func (m Module) Mount() (module.Mount, error) {
	handler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(m.assets)))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: handler}, nil
}
