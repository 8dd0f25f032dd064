package assets

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stageproof/stageproof.dev/internal/services/web/static"
)

func TestMountServesFilesUnderStaticPrefix(t *testing.T) {
	fsys := fstest.MapFS{"site.css": {Data: []byte("body{}")}}
	mount, err := New(fsys).Mount()
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	if mount.Prefix != "/static/" {
		t.Fatalf("prefix = %q, want /static/", mount.Prefix)
	}

	w := httptest.NewRecorder()
	mount.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/static/site.css", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "body{}" {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestMountServesEmbeddedIcons(t *testing.T) {
	mount, err := New(static.FS).Mount()
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	w := httptest.NewRecorder()
	mount.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/static/icons/pixel-grid.svg", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestMountReturns404ForMissingFile(t *testing.T) {
	mount, err := New(fstest.MapFS{}).Mount()
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	w := httptest.NewRecorder()
	mount.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/static/missing.css", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
