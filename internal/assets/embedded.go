package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed styles templates
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct {
	fs embed.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader over the built-in assets.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fs: builtin}
}

// LoadStyle returns the built-in stylesheet called name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate returns the built-in page template called name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

// Styles lists the names of the built-in stylesheets, sorted.
func (e *EmbeddedLoader) Styles() []string {
	entries, err := e.fs.ReadDir(styleKind.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), styleKind.ext); ok && !entry.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (e *EmbeddedLoader) load(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	data, err := e.fs.ReadFile(k.file(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	}
	return string(data), nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
