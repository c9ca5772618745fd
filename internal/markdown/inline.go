package markdown

import "regexp"

// Inline rules, applied in declaration order.
var (
	boldStarPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)

	italicStarPattern       = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderscorePattern = regexp.MustCompile(`_(.+?)_`)

	codeSpanPattern = regexp.MustCompile("`([^`]+)`")

	// linkPattern also matches the bracket part of an image; replaceLinks
	// skips matches preceded by '!'.
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// Inline converts emphasis, code spans, links and images in a single line
// of text to HTML. Text that matches no rule is returned unchanged.
func Inline(text string) string {
	text = boldStarPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = boldUnderscorePattern.ReplaceAllString(text, "<strong>$1</strong>")

	text = italicStarPattern.ReplaceAllString(text, "<em>$1</em>")
	text = italicUnderscorePattern.ReplaceAllString(text, "<em>$1</em>")

	text = codeSpanPattern.ReplaceAllString(text, "<code>$1</code>")

	text = replaceLinks(text)

	return imagePattern.ReplaceAllString(text, `<img src="$2" alt="$1">`)
}

// replaceLinks rewrites [label](target) into anchors, leaving image syntax
// (a bracket directly preceded by '!') for the image rule.
func replaceLinks(text string) string {
	matches := linkPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	out := make([]byte, 0, len(text)+len(matches)*16)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '!' {
			continue
		}
		out = append(out, text[last:start]...)
		out = append(out, `<a href="`...)
		out = append(out, text[m[4]:m[5]]...)
		out = append(out, `">`...)
		out = append(out, text[m[2]:m[3]]...)
		out = append(out, `</a>`...)
		last = end
	}
	out = append(out, text[last:]...)
	return string(out)
}
