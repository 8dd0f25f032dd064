package docs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stageproof/stageproof.dev/internal/services/web/content"
)

func testPages() []content.Page {
	return []content.Page{
		{Slug: "getting-started", Title: "Getting Started", Order: 1, HTML: "<p>Install the CLI.</p>"},
		{Slug: "writing-tests", Title: "Writing Tests", Order: 2, HTML: "<p>A test is a YAML file.</p>"},
	}
}

func mountTestModule(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New(testPages()).Mount()
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	if mount.Prefix != "/docs/" {
		t.Fatalf("prefix = %q, want /docs/", mount.Prefix)
	}
	return mount.Handler
}

func TestIndexListsPagesInCorpusOrder(t *testing.T) {
	handler := mountTestModule(t)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	first := strings.Index(body, "Getting Started")
	second := strings.Index(body, "Writing Tests")
	if first < 0 || second < 0 {
		t.Fatalf("expected both page titles in index, got %q", body)
	}
	if first > second {
		t.Fatal("expected corpus order in index")
	}
}

func TestPageRendersBodyAndActiveSidebarEntry(t *testing.T) {
	handler := mountTestModule(t)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/writing-tests", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<p>A test is a YAML file.</p>") {
		t.Fatalf("expected rendered page body, got %q", body)
	}
	if !strings.Contains(body, `<a class="active" href="/docs/writing-tests">Writing Tests</a>`) {
		t.Fatalf("expected active sidebar entry, got %q", body)
	}
	if !strings.Contains(body, `<h1>Writing Tests</h1>`) {
		t.Fatalf("expected page heading, got %q", body)
	}
}

func TestUnknownSlugRendersThemed404(t *testing.T) {
	handler := mountTestModule(t)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Fatalf("expected themed 404 page, got %q", w.Body.String())
	}
}

func TestPageRejectsNonGET(t *testing.T) {
	handler := mountTestModule(t)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/docs/writing-tests", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestEmptyCorpusStillMounts(t *testing.T) {
	mount, err := New(nil).Mount()
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	w := httptest.NewRecorder()
	mount.Handler.ServeHTTP(w, httptest.NewRequest("GET", "/docs/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestModuleID(t *testing.T) {
	if got := New(nil).ID(); got != "docs" {
		t.Fatalf("ID() = %q, want docs", got)
	}
}
