// Package highlight renders fenced code blocks with chroma.
package highlight

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mddocs/internal/markdown"
)

// Sentinel errors for highlighting.
var (
	ErrUnknownStyle = errors.New("unknown highlight style")
	ErrHighlight    = errors.New("code highlighting failed")
)

// Highlighter turns code into class-annotated HTML. Colors live in the
// style sheet returned by CSS, so pages stay small.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New creates a Highlighter for the named chroma style (e.g. "monokai").
func New(styleName string) (*Highlighter, error) {
	style := styles.Get(styleName)
	if style == nil || style.Name != styleName {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &Highlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// Styles lists the chroma styles New accepts.
func Styles() []string {
	return styles.Names()
}

// StyleName returns the chroma style in use.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}

// CSS returns the style sheet for the highlighted markup.
func (h *Highlighter) CSS() (string, error) {
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// Code highlights code written in lang. The boolean is false when no lexer
// knows the language; callers keep the plain rendering in that case.
func (h *Highlighter) Code(lang, code string) (string, bool, error) {
	if lang == "" {
		return "", false, nil
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false, nil
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), true, nil
}

// Apply replaces each complete fenced code block whose language is known
// with a single highlighted fragment. Unknown languages and fences left
// open at end of document pass through untouched.
func (h *Highlighter) Apply(frags []markdown.Fragment) ([]markdown.Fragment, error) {
	out := make([]markdown.Fragment, 0, len(frags))

	for i := 0; i < len(frags); i++ {
		f := frags[i]
		if f.Kind != markdown.KindCodeOpen {
			out = append(out, f)
			continue
		}

		end := closingFence(frags, i+1)
		if end < 0 {
			out = append(out, frags[i:]...)
			break
		}

		code := collectCode(frags[i+1 : end])
		highlighted, ok, err := h.Code(f.Lang, code)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, frags[i:end+1]...)
		} else {
			out = append(out, markdown.Fragment{Kind: markdown.KindBlock, HTML: strings.TrimRight(highlighted, "\n")})
		}
		i = end
	}

	return out, nil
}

func closingFence(frags []markdown.Fragment, from int) int {
	for j := from; j < len(frags); j++ {
		if frags[j].Kind == markdown.KindCodeClose {
			return j
		}
	}
	return -1
}

func collectCode(frags []markdown.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Raw)
		b.WriteByte('\n')
	}
	return b.String()
}
