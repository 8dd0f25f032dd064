package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js icons/*.svg
var FS embed.FS
