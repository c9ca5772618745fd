package markdown

import "strings"

// FragmentKind classifies an emitted fragment.
type FragmentKind int

const (
	// KindBlock is a block-level tag or tag-wrapped text.
	KindBlock FragmentKind = iota
	// KindBlank is the empty separator emitted for blank source lines.
	KindBlank
	// KindCodeOpen opens a fenced code block; Lang carries the info string.
	KindCodeOpen
	// KindCodeLine is one escaped line inside a fenced code block; Raw
	// keeps the unescaped source.
	KindCodeLine
	// KindCodeClose closes a fenced code block.
	KindCodeClose
)

// Fragment is one unit of emitted HTML. Fragments are ordered and
// append-only; a document renders as their HTML joined by newlines.
type Fragment struct {
	Kind FragmentKind
	HTML string
	Raw  string
	Lang string
}

func block(html string) Fragment {
	return Fragment{Kind: KindBlock, HTML: html}
}

// Render joins fragment HTML with newlines.
func Render(frags []Fragment) string {
	var b strings.Builder
	for i, f := range frags {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.HTML)
	}
	return b.String()
}
