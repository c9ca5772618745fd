// Package assets provides the CSS styles and HTML page templates used to
// assemble documentation pages.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, light) and the
// page template embedded at compile time.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This enables overriding a single asset while keeping defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css     # CSS styles (e.g., default.css)
//	└── templates/
//	    └── {name}.html    # Page templates (e.g., page.html)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
// Styles are parsed before use so that malformed CSS fails early.
package assets
