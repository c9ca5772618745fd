package mddocs

import "strings"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the construction settings for a Converter.
type converterConfig struct {
	styleInput     string // name, file path, or CSS content
	assetPath      string
	templateName   string
	engineName     string
	highlightStyle string
	closeOpenFence bool
	lang           string
	sidebarTitle   string
	pageLinks      bool
}

// WithStyle sets the page style sheet. The value may be a style name
// ("default", "light", or one found under the asset path), a file path
// (contains / or \), or literal CSS (contains {).
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = strings.TrimSpace(style)
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets. Assets missing there fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTemplate selects the page template by name (default "page").
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithEngine selects the Markdown engine: EngineBuiltin (default) or EngineGoldmark.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engineName = name
	}
}

// WithHighlighting enables syntax highlighting of fenced code with the named
// chroma style (e.g. "monokai"). An empty name disables it.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}

// WithCloseOpenFence makes the builtin engine close a code fence left open
// at the end of the document.
func WithCloseOpenFence(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.closeOpenFence = enabled
	}
}

// WithLang sets the page language attribute (default "en").
func WithLang(lang string) Option {
	return func(c *Converter) {
		c.cfg.lang = lang
	}
}

// WithSidebarTitle sets the label above the navigation (default "Navigation").
func WithSidebarTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.sidebarTitle = title
	}
}

// WithPageLinks rewrites relative links to .md and .markdown files so they
// point at the .html pages a site build writes next to them.
func WithPageLinks(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.pageLinks = enabled
	}
}
