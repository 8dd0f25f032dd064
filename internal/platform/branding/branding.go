// Package branding centralizes product naming used across the site.
package branding

// AppName is the public product name.
const AppName = "StageProof"

// Tagline is the homepage hero strapline.
const Tagline = "Browser automation testing that sees what your users see."

// SourceURL points at the public repository linked from the site footer.
const SourceURL = "https://github.com/stageproof/stageproof.dev"
