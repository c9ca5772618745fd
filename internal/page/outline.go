package page

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// IndentStep is the sidebar indentation in pixels per heading level below h1.
const IndentStep = 15

// Entry is one sidebar link as the bootstrap script builds it.
type Entry struct {
	Level  int    // 1-3
	ID     string // href target without '#'
	Text   string // plain text of the heading
	Indent int    // left margin in pixels
}

// headingPattern matches h1-h3 elements. The id attribute is optional: the
// script lists headings without one too, linking to "#".
// Captures: 1=level, 2=attributes, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([1-3])(\s[^>]*)?>(.*?)</h[1-3]>`)

var (
	idPattern      = regexp.MustCompile(`(?i)\bid="([^"]*)"`)
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// Outline lists the h1-h3 headings of an HTML fragment in document order,
// with the indentation the sidebar script gives them.
func Outline(body string) []Entry {
	matches := headingPattern.FindAllStringSubmatch(body, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		var id string
		if idm := idPattern.FindStringSubmatch(m[2]); idm != nil {
			id = html.UnescapeString(idm[1])
		}
		entries = append(entries, Entry{
			Level:  level,
			ID:     id,
			Text:   stripTags(m[3]),
			Indent: (level - 1) * IndentStep,
		})
	}
	return entries
}

// stripTags removes markup and decodes entities, matching textContent.
func stripTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
