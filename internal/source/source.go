// Package source reads Markdown documents from disk and works out the
// metadata a site build needs: front matter, page title and description.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"

	"github.com/alnah/go-mddocs/internal/markdown"
	"github.com/alnah/go-mddocs/internal/yamlutil"
)

// ErrFrontMatter indicates a front matter block that cannot be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// Meta is the front matter understood by the site build. Unknown keys are
// ignored.
type Meta struct {
	Title       string `yaml:"title" toml:"title"`
	Description string `yaml:"description" toml:"description"`
	Summary     string `yaml:"summary" toml:"summary"`
	Draft       bool   `yaml:"draft" toml:"draft"`
}

// Document is a Markdown source with its front matter removed.
type Document struct {
	Path string
	Meta Meta
	Body string
}

// formats lists the accepted front matter blocks. YAML goes through yamlutil
// so front matter and config files share one decoder.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", unmarshalYAML),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// unmarshalYAML accepts an empty block, which yamlutil rejects.
func unmarshalYAML(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}

// h1Pattern matches a level-one ATX heading line.
var h1Pattern = regexp.MustCompile(`^#[ \t]+(.+?)[ \t]*$`)

// Parse splits src into front matter and Markdown body. A source without
// front matter is returned whole with zero Meta.
func Parse(path string, src []byte) (*Document, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta, formats...)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrFrontMatter, path, err)
	}
	return &Document{Path: path, Meta: meta, Body: string(body)}, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- path comes from discovery or the command line
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, src)
}

// Description returns the front matter description, falling back to summary.
func (d *Document) Description() string {
	if d.Meta.Description != "" {
		return d.Meta.Description
	}
	return d.Meta.Summary
}

// FirstHeading returns the text of the first level-one heading, or "".
// Lines are folded through the block parser so "# comment" lines inside
// fenced code are not mistaken for headings.
func (d *Document) FirstHeading() string {
	var state markdown.State
	for _, line := range strings.Split(d.Body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !state.InCodeBlock {
			if m := h1Pattern.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
		state, _ = state.Step(line)
	}
	return ""
}

// Title picks the page title: override if set, then front matter, then the
// first level-one heading, then the file name without extension.
func (d *Document) Title(override string) string {
	for _, candidate := range []string{override, d.Meta.Title, d.FirstHeading()} {
		if t := strings.TrimSpace(candidate); t != "" {
			return t
		}
	}
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WithPrefix joins a site prefix and a page title as "Prefix - Title".
func WithPrefix(prefix, title string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return title
	}
	return prefix + " - " + title
}
