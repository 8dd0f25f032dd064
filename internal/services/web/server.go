// Package web assembles and runs the documentation website HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/stageproof/stageproof.dev/internal/platform/assets/registry"
	"github.com/stageproof/stageproof.dev/internal/platform/branding"
	"github.com/stageproof/stageproof.dev/internal/platform/timeouts"
	"github.com/stageproof/stageproof.dev/internal/services/web/app"
	"github.com/stageproof/stageproof.dev/internal/services/web/content"
	module "github.com/stageproof/stageproof.dev/internal/services/web/module"
	"github.com/stageproof/stageproof.dev/internal/services/web/modules/assets"
	"github.com/stageproof/stageproof.dev/internal/services/web/modules/docs"
	"github.com/stageproof/stageproof.dev/internal/services/web/modules/home"
	"github.com/stageproof/stageproof.dev/internal/services/web/platform/httpx"
	"github.com/stageproof/stageproof.dev/internal/services/web/routepath"
	"github.com/stageproof/stageproof.dev/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	AppName  string
}

// Server hosts the website HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds the website server: asset registry, documentation
// corpus, and module composition all happen here, once, at startup.
func NewServer(config Config) (*Server, error) {
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}

	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// NewHandler assembles the root HTTP handler.
//
// This is the test-oriented entrypoint: it performs all startup resolution
// (icons, markdown corpus) without binding a listener.
func NewHandler(config Config) (http.Handler, error) {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}

	icons, err := registry.New(static.FS, registry.Options{
		Dir:         "icons",
		MountPrefix: routepath.StaticPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("build icon registry: %w", err)
	}

	pages, err := content.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("load documentation corpus: %w", err)
	}

	root, err := app.Compose(app.ComposeInput{
		Modules: []module.Module{
			home.New(home.Config{AppName: appName, Tagline: branding.Tagline, Icons: icons}),
			docs.New(pages),
			assets.New(static.FS),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.TraceRequests("web"),
	), nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
