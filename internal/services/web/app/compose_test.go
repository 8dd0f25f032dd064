package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/stageproof/stageproof.dev/internal/services/web/module"
)

type stubModule struct {
	id     string
	prefix string
	err    error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) {
	if m.err != nil {
		return module.Mount{}, m.err
	}
	return module.Mount{
		Prefix: m.prefix,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}, nil
}

func TestComposeMountsModulePrefixes(t *testing.T) {
	handler, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "home", prefix: "/"},
		stubModule{id: "docs", prefix: "/docs/"},
	}})
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/anything", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected error for nil module")
	}
}

func TestComposeRejectsDuplicatePrefix(t *testing.T) {
	_, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "a", prefix: "/docs/"},
		stubModule{id: "b", prefix: "/docs/"},
	}})
	if err == nil || !strings.Contains(err.Error(), "duplicates prefix") {
		t.Fatalf("Compose() = %v, want duplicate prefix error", err)
	}
}

func TestComposeRejectsInvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "docs/", "/docs"} {
		_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "bad", prefix: prefix}}})
		if err == nil {
			t.Fatalf("expected error for prefix %q", prefix)
		}
	}
}

func TestComposePropagatesMountError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "bad", err: boom}}})
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("Compose() = %v, want wrapped mount error", err)
	}
}
