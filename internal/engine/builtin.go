package engine

import (
	"context"
	"fmt"

	"github.com/alnah/go-mddocs/internal/highlight"
	"github.com/alnah/go-mddocs/internal/markdown"
)

// BuiltinConverter renders with the internal/markdown block parser.
type BuiltinConverter struct {
	parser      *markdown.Parser
	highlighter *highlight.Highlighter
}

// NewBuiltinConverter creates a BuiltinConverter. A nil highlighter keeps
// code blocks as escaped plain text.
func NewBuiltinConverter(closeOpenFence bool, h *highlight.Highlighter) *BuiltinConverter {
	return &BuiltinConverter{
		parser:      markdown.NewParser(markdown.Options{CloseOpenFence: closeOpenFence}),
		highlighter: h,
	}
}

// ToHTML converts content to an HTML body fragment.
func (c *BuiltinConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	frags := c.parser.Parse(markdown.SplitLines(content))
	if c.highlighter != nil {
		var err error
		frags, err = c.highlighter.Apply(frags)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
	}
	return markdown.Render(frags), nil
}

var _ HTMLConverter = (*BuiltinConverter)(nil)
