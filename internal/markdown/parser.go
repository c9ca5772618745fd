package markdown

import (
	"context"
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and old Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Options tunes the block parser.
type Options struct {
	// CloseOpenFence emits a closing tag for a code fence left open at end
	// of document. By default the fence stays open.
	CloseOpenFence bool
}

// Parser converts whole documents. It holds no per-document state and is
// safe for concurrent use.
type Parser struct {
	opts Options
}

// NewParser creates a Parser.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// SplitLines normalizes line endings and splits a document into lines.
func SplitLines(doc string) []string {
	return strings.Split(crlfOrCR.ReplaceAllString(doc, "\n"), "\n")
}

// Parse folds lines through a fresh State and returns every emitted fragment.
func (p *Parser) Parse(lines []string) []Fragment {
	var (
		state State
		out   = make([]Fragment, 0, len(lines))
	)
	for _, line := range lines {
		var frags []Fragment
		state, frags = state.Step(line)
		out = append(out, frags...)
	}
	return append(out, state.Finish(p.opts.CloseOpenFence)...)
}

// ToHTML converts a document to an HTML body fragment.
// The context is only checked before parsing; a single document is never
// interrupted midway.
func (p *Parser) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Render(p.Parse(SplitLines(content))), nil
}
