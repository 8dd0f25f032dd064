// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Health       = "/up"
	DocsPrefix   = "/docs/"
	DocsIndex    = "/docs/"
	DocPattern   = DocsPrefix + "{slug}"
	StaticPrefix = "/static/"
)

// Doc returns the documentation page route for a slug.
func Doc(slug string) string {
	return DocsPrefix + escapeSegment(slug)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
