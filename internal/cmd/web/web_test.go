package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != defaultHTTPAddr {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, defaultHTTPAddr)
	}
	if cfg.AppName != "StageProof" {
		t.Fatalf("AppName = %q, want StageProof", cfg.AppName)
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("STAGEPROOF_WEB_HTTP_ADDR", "localhost:9999")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:9999" {
		t.Fatalf("HTTPAddr = %q, want localhost:9999", cfg.HTTPAddr)
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("STAGEPROOF_WEB_HTTP_ADDR", "localhost:9999")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:7777"})
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:7777" {
		t.Fatalf("HTTPAddr = %q, want localhost:7777", cfg.HTTPAddr)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
