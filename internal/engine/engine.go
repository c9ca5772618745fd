// Package engine selects the Markdown renderer that produces a page body.
//
// The built-in engine is the small line-oriented dialect from
// internal/markdown. The goldmark engine renders full CommonMark with GFM
// extensions for documents that outgrow that dialect. Both return an HTML
// fragment meant to be wrapped by internal/page.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mddocs/internal/highlight"
)

// Engine names accepted by New.
const (
	NameBuiltin  = "builtin"
	NameGoldmark = "goldmark"
)

// Sentinel errors for engine selection and conversion.
var (
	ErrUnknownEngine  = errors.New("unknown markdown engine")
	ErrHTMLConversion = errors.New("HTML conversion failed")
)

// HTMLConverter abstracts Markdown to HTML body conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Options configures New.
type Options struct {
	Name           string                 // "" or "builtin", "goldmark"
	CloseOpenFence bool                   // builtin only
	Highlighter    *highlight.Highlighter // nil disables highlighting
}

// New returns the converter for opts.Name.
func New(opts Options) (HTMLConverter, error) {
	switch opts.Name {
	case "", NameBuiltin:
		return NewBuiltinConverter(opts.CloseOpenFence, opts.Highlighter), nil
	case NameGoldmark:
		return NewGoldmarkConverter(opts.Highlighter), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownEngine, opts.Name, NameBuiltin, NameGoldmark)
	}
}
