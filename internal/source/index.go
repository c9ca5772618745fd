package source

import (
	"path/filepath"
	"strings"
)

// IndexEntry is one row of the generated index page.
type IndexEntry struct {
	Title       string
	Link        string // relative URL of the built page
	Description string
}

// Index describes the generated hub page.
type Index struct {
	Title   string
	Updated string // already formatted; empty omits the line
	Entries []IndexEntry
}

// Markdown writes the hub page: a heading and a two-column table linking
// every entry. The result is fed through the same converter as any other
// page.
func (ix Index) Markdown() string {
	var b strings.Builder
	b.WriteString("# " + ix.Title + "\n\n")
	if len(ix.Entries) == 0 {
		b.WriteString("No documents.\n")
	} else {
		b.WriteString("| Document | Description |\n")
		b.WriteString("|----------|-------------|\n")
		for _, e := range ix.Entries {
			b.WriteString("| [" + cell(e.Title) + "](" + e.Link + ") | " + cell(e.Description) + " |\n")
		}
	}
	if ix.Updated != "" {
		b.WriteString("\nUpdated " + ix.Updated + "\n")
	}
	return b.String()
}

// RelativeLink turns a page path under outputRoot into a slash-separated
// link relative to the index page.
func RelativeLink(outputRoot, page string) string {
	rel, err := filepath.Rel(outputRoot, page)
	if err != nil {
		return filepath.ToSlash(page)
	}
	return filepath.ToSlash(rel)
}

// cell keeps a value from breaking the table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(strings.ReplaceAll(s, "|", "/"))
}
