package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// ListKind identifies the open list container.
type ListKind int

const (
	ListNone ListKind = iota
	ListUnordered
	ListOrdered
)

// tag returns the container element name.
func (k ListKind) tag() string {
	switch k {
	case ListUnordered:
		return "ul"
	case ListOrdered:
		return "ol"
	default:
		return ""
	}
}

// Block-level line classifiers.
var (
	headingPattern       = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	unorderedItemPattern = regexp.MustCompile(`^[-*]\s+`)
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s+`)
	rulePattern          = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
	separatorCellPattern = regexp.MustCompile(`^:?-+:?$`)
)

const fenceMarker = "```"

// codeEscaper escapes the characters that would otherwise be parsed as markup.
var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// State is the block parser's position within one document. The zero value
// is the start-of-document state. InCodeBlock, InTable and InList are
// mutually exclusive between steps.
type State struct {
	InCodeBlock  bool
	CodeLanguage string

	InTable bool
	// HeaderOpen is true while table rows still belong to <thead>.
	HeaderOpen bool

	InList bool
	List   ListKind
}

// Step consumes one source line and returns the next state together with
// the fragments the line produced. Every line is handled by exactly one
// rule; the paragraph rule catches whatever the others reject.
func (s State) Step(line string) (State, []Fragment) {
	var out []Fragment

	if strings.HasPrefix(line, fenceMarker) {
		return s.fence(line, out)
	}

	if s.InCodeBlock {
		return s, append(out, Fragment{Kind: KindCodeLine, HTML: codeEscaper.Replace(line), Raw: line})
	}

	trimmed := strings.TrimSpace(line)

	if strings.Contains(line, "|") && strings.HasPrefix(trimmed, "|") {
		return s.tableRow(trimmed, out)
	}
	if s.InTable {
		s, out = s.closeTable(out)
	}

	if trimmed == "" {
		s, out = s.closeList(out)
		return s, append(out, Fragment{Kind: KindBlank})
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		s, out = s.closeList(out)
		level := len(m[1])
		text := strings.TrimSpace(m[2])
		return s, append(out, block(fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, Anchor(text), Inline(text), level)))
	}

	if loc := unorderedItemPattern.FindStringIndex(trimmed); loc != nil {
		return s.listItem(ListUnordered, trimmed[loc[1]:], out)
	}

	if loc := orderedItemPattern.FindStringIndex(trimmed); loc != nil {
		return s.listItem(ListOrdered, trimmed[loc[1]:], out)
	}

	if rulePattern.MatchString(trimmed) {
		return s, append(out, block("<hr />"))
	}

	s, out = s.closeList(out)
	return s, append(out, block("<p>"+Inline(line)+"</p>"))
}

// Finish closes whatever is still open at end of document. An unterminated
// code fence is closed only when closeFence is set.
func (s State) Finish(closeFence bool) []Fragment {
	var out []Fragment
	if s.InCodeBlock && closeFence {
		out = append(out, Fragment{Kind: KindCodeClose, HTML: "</code></pre>", Lang: s.CodeLanguage})
	}
	_, out = s.closeList(out)
	_, out = s.closeTable(out)
	return out
}

// fence toggles the code block. Opening a fence closes any open list or table.
func (s State) fence(line string, out []Fragment) (State, []Fragment) {
	if s.InCodeBlock {
		out = append(out, Fragment{Kind: KindCodeClose, HTML: "</code></pre>", Lang: s.CodeLanguage})
		s.InCodeBlock = false
		s.CodeLanguage = ""
		return s, out
	}

	s, out = s.closeList(out)
	s, out = s.closeTable(out)

	lang := strings.TrimSpace(strings.TrimLeft(line, "`"))
	open := "<pre><code>"
	if lang != "" {
		open = `<pre><code class="language-` + html.EscapeString(lang) + `">`
	}
	s.InCodeBlock = true
	s.CodeLanguage = lang
	return s, append(out, Fragment{Kind: KindCodeOpen, HTML: open, Lang: lang})
}

// tableRow handles a pipe-delimited line: opens the table if needed,
// consumes separator rows, and emits header or data rows.
func (s State) tableRow(trimmed string, out []Fragment) (State, []Fragment) {
	if !s.InTable {
		s, out = s.closeList(out)
		out = append(out, block(`<table class="table">`), block("<thead>"))
		s.InTable = true
		s.HeaderOpen = true
	}

	cells := splitCells(trimmed)
	if isSeparatorRow(cells) {
		if s.HeaderOpen {
			out = append(out, block("</thead>"), block("<tbody>"))
			s.HeaderOpen = false
		}
		return s, out
	}

	cellTag := "td"
	if s.HeaderOpen {
		cellTag = "th"
	}
	out = append(out, block("<tr>"))
	for _, cell := range cells {
		out = append(out, block("<"+cellTag+">"+Inline(cell)+"</"+cellTag+">"))
	}
	return s, append(out, block("</tr>"))
}

// closeTable ends the open section and the table element.
func (s State) closeTable(out []Fragment) (State, []Fragment) {
	if !s.InTable {
		return s, out
	}
	if s.HeaderOpen {
		out = append(out, block("</thead>"))
	} else {
		out = append(out, block("</tbody>"))
	}
	s.InTable = false
	s.HeaderOpen = false
	return s, append(out, block("</table>"))
}

// listItem emits an item, switching containers when the kind changes.
func (s State) listItem(kind ListKind, text string, out []Fragment) (State, []Fragment) {
	if !s.InList || s.List != kind {
		s, out = s.closeList(out)
		out = append(out, block("<"+kind.tag()+">"))
		s.InList = true
		s.List = kind
	}
	return s, append(out, block("<li>"+Inline(text)+"</li>"))
}

// closeList ends the open list, if any.
func (s State) closeList(out []Fragment) (State, []Fragment) {
	if !s.InList {
		return s, out
	}
	out = append(out, block("</"+s.List.tag()+">"))
	s.InList = false
	s.List = ListNone
	return s, out
}

// splitCells splits a trimmed table line on '|', dropping the outer
// delimiters and trimming each cell.
func splitCells(trimmed string) []string {
	inner := strings.TrimPrefix(trimmed, "|")
	inner = strings.TrimSuffix(inner, "|")
	parts := strings.Split(inner, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorCellPattern.MatchString(c) {
			return false
		}
	}
	return len(cells) > 0
}
