package mddocs

import (
	"github.com/alnah/go-mddocs/internal/engine"
	"github.com/alnah/go-mddocs/internal/page"
)

// Engine names accepted by WithEngine.
const (
	EngineBuiltin  = engine.NameBuiltin
	EngineGoldmark = engine.NameGoldmark
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string // Markdown content; empty input yields an empty body
	Title    string // Page title (optional, defaults to the first heading)
	CSS      string // Extra CSS appended after the converter style (optional)
}

// Result holds the output of a conversion.
type Result struct {
	HTML     []byte    // Complete page
	Body     string    // Body fragment produced by the engine
	Title    string    // Title used for the page
	Headings []Heading // Sidebar entries, in document order
}

// Heading is one sidebar entry the page script will build.
type Heading struct {
	Level  int    // 1-3
	ID     string // anchor without '#'
	Text   string // plain text
	Indent int    // left margin in pixels
}

func headingsFrom(entries []page.Entry) []Heading {
	out := make([]Heading, len(entries))
	for i, e := range entries {
		out[i] = Heading(e)
	}
	return out
}
