// Package config loads and validates the YAML configuration of a site build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mddocs/internal/dateutil"
	"github.com/alnah/go-mddocs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Directory name under the user config dir searched by LoadConfig.
const appConfigDir = "go-mddocs"

// Defaults applied by DefaultConfig.
const (
	DefaultOutputDir  = "docs/html"
	DefaultIndexTitle = "Documentation"
)

// Field length limits.
const (
	MaxPathLength         = 4096 // PATH_MAX on Linux
	MaxStyleLength        = 4096 // name, path, or short inline CSS
	MaxNameLength         = 100  // template, engine, highlight style
	MaxTitleLength        = 200  // page and index titles
	MaxTitlePrefixLength  = 100  // "ChainGraph"
	MaxLangLength         = 35   // BCP 47 tag
	MaxSidebarTitleLength = 100  // "Navigation"
	MaxPages              = 1000 // explicit page entries
)

// Engine names accepted in markdown.engine.
var validEngines = map[string]bool{"": true, "builtin": true, "goldmark": true}

// Config holds all configuration for a documentation build.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	CSS      CSSConfig      `yaml:"css"`
	Assets   AssetsConfig   `yaml:"assets"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Site     SiteConfig     `yaml:"site"`
	Pages    []PageConfig   `yaml:"pages"`
	Index    IndexConfig    `yaml:"index"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input file or directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Root of the generated site
}

// CSSConfig defines styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, file path, or inline CSS (empty = default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets only
	Template string `yaml:"template"` // Page template name (empty = "page")
}

// MarkdownConfig selects and tunes the Markdown engine.
type MarkdownConfig struct {
	Engine         string `yaml:"engine"`         // "builtin" (default) or "goldmark"
	Highlight      string `yaml:"highlight"`      // chroma style; empty disables highlighting
	CloseOpenFence bool   `yaml:"closeOpenFence"` // builtin only
}

// SiteConfig holds values shared by every page.
type SiteConfig struct {
	TitlePrefix  string `yaml:"titlePrefix"`  // "Prefix - Title"
	Lang         string `yaml:"lang"`         // html lang attribute
	SidebarTitle string `yaml:"sidebarTitle"` // label above the navigation
}

// PageConfig overrides the title of one source file.
type PageConfig struct {
	Source string `yaml:"source"` // slash path relative to the input root
	Title  string `yaml:"title"`
}

// IndexConfig controls generation of the index.html hub page.
type IndexConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	Updated string `yaml:"updated"` // "auto", "auto:FORMAT" or literal text; empty omits it
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"css.style", c.CSS.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.template", c.Assets.Template, MaxNameLength},
		{"markdown.engine", c.Markdown.Engine, MaxNameLength},
		{"markdown.highlight", c.Markdown.Highlight, MaxNameLength},
		{"site.titlePrefix", c.Site.TitlePrefix, MaxTitlePrefixLength},
		{"site.lang", c.Site.Lang, MaxLangLength},
		{"site.sidebarTitle", c.Site.SidebarTitle, MaxSidebarTitleLength},
		{"index.title", c.Index.Title, MaxTitleLength},
		{"index.updated", c.Index.Updated, MaxNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if !validEngines[strings.ToLower(c.Markdown.Engine)] {
		return fmt.Errorf("%w: markdown.engine %q (must be builtin or goldmark)", ErrInvalidValue, c.Markdown.Engine)
	}

	if _, err := dateutil.Resolve(c.Index.Updated, time.Time{}); err != nil {
		return fmt.Errorf("%w: index.updated: %v", ErrInvalidValue, err)
	}

	if len(c.Pages) > MaxPages {
		return fmt.Errorf("%w: pages (%d entries, max %d)", ErrInvalidValue, len(c.Pages), MaxPages)
	}
	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		if strings.TrimSpace(p.Source) == "" {
			return fmt.Errorf("%w: pages[%d].source is required", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("pages[%d].source", i), p.Source, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("pages[%d].title", i), p.Title, MaxTitleLength); err != nil {
			return err
		}
		key := cleanSource(p.Source)
		if seen[key] {
			return fmt.Errorf("%w: pages[%d].source %q listed twice", ErrInvalidValue, i, p.Source)
		}
		seen[key] = true
	}

	return nil
}

// PageTitle returns the configured title for a source path relative to the
// input root, or "" when the page has no entry.
func (c *Config) PageTitle(relSource string) string {
	want := cleanSource(relSource)
	for _, p := range c.Pages {
		if cleanSource(p.Source) == want {
			return p.Title
		}
	}
	return ""
}

// cleanSource normalizes a page source for comparison.
func cleanSource(s string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(strings.TrimSpace(s))), "./")
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{DefaultDir: DefaultOutputDir},
		Index:  IndexConfig{Enabled: false, Title: DefaultIndexTitle},
	}
}

// applyDefaults fills fields left empty with their DefaultConfig value.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Output.DefaultDir == "" {
		c.Output.DefaultDir = def.Output.DefaultDir
	}
	if c.Index.Title == "" {
		c.Index.Title = def.Index.Title
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Dump renders cfg as YAML, as LoadConfig would read it back.
func Dump(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists where LoadConfig looks for a config called name, in order.
// Tries the current directory, then ~/.config/go-mddocs/, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appConfigDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
