// Package registry resolves logical icon names into static asset hrefs.
//
// The registry is built once at startup from the embedded asset filesystem;
// render paths only read the prebuilt map and never touch the filesystem.
package registry

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var (
	ErrIconName     = errors.New("icon name is required")
	ErrIconNotFound = errors.New("icon is not registered")
)

// Registry maps logical icon names to resolved hrefs.
type Registry struct {
	hrefs   map[string]string
	aliases map[string]string
}

// Options controls registry construction.
type Options struct {
	// Dir is the directory inside the asset filesystem that holds icons.
	Dir string
	// MountPrefix is the URL prefix under which the asset filesystem is served.
	MountPrefix string
	// Aliases maps alternate names to canonical icon names.
	Aliases map[string]string
}

// New scans the icon directory of the asset filesystem and registers one
// href per SVG file, keyed by the file name without extension.
func New(assets fs.FS, opts Options) (*Registry, error) {
	dir := strings.Trim(strings.TrimSpace(opts.Dir), "/")
	if dir == "" {
		dir = "icons"
	}
	mount := strings.TrimSpace(opts.MountPrefix)
	if mount == "" {
		mount = "/"
	}
	if !strings.HasPrefix(mount, "/") {
		mount = "/" + mount
	}

	entries, err := fs.ReadDir(assets, dir)
	if err != nil {
		return nil, err
	}

	hrefs := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".svg") {
			continue
		}
		key := strings.TrimSuffix(name, ".svg")
		hrefs[key] = path.Join(mount, dir, name)
	}

	aliases := make(map[string]string, len(opts.Aliases))
	for alias, canonical := range opts.Aliases {
		aliases[strings.TrimSpace(alias)] = strings.TrimSpace(canonical)
	}

	return &Registry{hrefs: hrefs, aliases: aliases}, nil
}

// Icon returns the resolved href for a logical icon name.
func (r *Registry) Icon(name string) (string, error) {
	if r == nil {
		return "", ErrIconNotFound
	}
	key := r.normalize(name)
	if key == "" {
		return "", ErrIconName
	}
	href, ok := r.hrefs[key]
	if !ok {
		return "", ErrIconNotFound
	}
	return href, nil
}

// Names returns the registered canonical icon names in stable order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.hrefs))
	for name := range r.hrefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) normalize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	return name
}
