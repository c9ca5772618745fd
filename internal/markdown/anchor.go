package markdown

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackAnchor is used when nothing at all is left after normalization
// (e.g. "## !!!").
const fallbackAnchor = "section"

// Anchor derives the id attribute for a heading from its source text.
// The text is case-folded, every rune that is not a letter, digit,
// whitespace or hyphen is dropped, and whitespace runs become a single
// hyphen. Edges are not trimmed, so "📚 Documents" becomes "-documents".
// Identical headings yield identical anchors.
func Anchor(text string) string {
	lower := cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(lower))
	pendingSpace := false
	for _, r := range lower {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			if pendingSpace {
				b.WriteByte('-')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}

	if pendingSpace {
		b.WriteByte('-')
	}
	if b.Len() == 0 {
		return fallbackAnchor
	}
	return b.String()
}
