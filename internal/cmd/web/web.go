// Package web wires configuration parsing and startup for the website server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/stageproof/stageproof.dev/internal/platform/branding"
	"github.com/stageproof/stageproof.dev/internal/platform/config"
	"github.com/stageproof/stageproof.dev/internal/platform/otel"
	"github.com/stageproof/stageproof.dev/internal/services/web"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"STAGEPROOF_WEB_HTTP_ADDR"`
	AppName  string `env:"STAGEPROOF_WEB_APP_NAME"`
}

// ParseConfig resolves configuration from environment variables and flags.
// Flags take precedence over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr: defaultHTTPAddr,
		AppName:  branding.AppName,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Site name shown in page titles")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the website server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		AppName:  cfg.AppName,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
