// Package content loads the embedded documentation corpus.
//
// Pages are markdown files named NN-slug.md; the numeric prefix fixes the
// sidebar order and the remainder becomes the URL slug. The corpus is read
// and rendered once at startup, after which it is immutable.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/russross/blackfriday/v2"
)

//go:embed docs/*.md
var docsFS embed.FS

// Page is one rendered documentation page.
type Page struct {
	Slug  string
	Title string
	Order int
	// HTML is the rendered body, excluding the leading title heading.
	HTML string
}

// LoadPages reads, parses, and renders the embedded documentation corpus.
func LoadPages() ([]Page, error) {
	return loadPagesFrom(docsFS, "docs")
}

func loadPagesFrom(fsys fs.FS, dir string) ([]Page, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read docs dir: %w", err)
	}

	pages := make([]Page, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		page, err := loadPage(fsys, dir, entry.Name())
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[page.Slug]; ok {
			return nil, fmt.Errorf("docs page %q duplicates slug %q from %q", entry.Name(), page.Slug, previous)
		}
		seen[page.Slug] = entry.Name()
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Slug < pages[j].Slug
	})
	return pages, nil
}

func loadPage(fsys fs.FS, dir string, name string) (Page, error) {
	order, slug, err := parsePageName(name)
	if err != nil {
		return Page{}, err
	}

	raw, err := fs.ReadFile(fsys, dir+"/"+name)
	if err != nil {
		return Page{}, fmt.Errorf("read docs page %q: %w", name, err)
	}

	title, body, err := splitTitle(string(raw))
	if err != nil {
		return Page{}, fmt.Errorf("docs page %q: %w", name, err)
	}

	rendered := blackfriday.Run([]byte(body),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)
	return Page{
		Slug:  slug,
		Title: title,
		Order: order,
		HTML:  string(rendered),
	}, nil
}

// parsePageName splits NN-slug.md into its order and slug parts.
func parsePageName(name string) (int, string, error) {
	base := strings.TrimSuffix(name, ".md")
	prefix, slug, found := strings.Cut(base, "-")
	if !found || slug == "" {
		return 0, "", fmt.Errorf("docs page %q: name must be NN-slug.md", name)
	}
	order, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("docs page %q: order prefix is not numeric", name)
	}
	return order, slug, nil
}

// splitTitle pulls the leading H1 out of a markdown document.
func splitTitle(markdown string) (string, string, error) {
	trimmed := strings.TrimLeft(markdown, "\n")
	line, rest, _ := strings.Cut(trimmed, "\n")
	if !strings.HasPrefix(line, "# ") {
		return "", "", fmt.Errorf("first line must be a # title heading")
	}
	title := strings.TrimSpace(strings.TrimPrefix(line, "# "))
	if title == "" {
		return "", "", fmt.Errorf("title heading is empty")
	}
	return title, strings.TrimLeft(rest, "\n"), nil
}
