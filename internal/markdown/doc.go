// Package markdown implements the built-in Markdown-to-HTML engine.
//
// The engine understands a deliberately small dialect: ATX headings, flat
// unordered and ordered lists, pipe tables, fenced code blocks, horizontal
// rules and paragraphs, plus bold, italic, inline code, links and images
// inside a line.
//
// # Block Parsing
//
// Conversion is a fold over the document's lines. Each line is fed to
// State.Step, which returns the next State and the fragments emitted for
// that line:
//
//	state := markdown.State{}
//	for _, line := range lines {
//	    var frags []markdown.Fragment
//	    state, frags = state.Step(line)
//	    out = append(out, frags...)
//	}
//	out = append(out, state.Finish(false)...)
//
// Parser wraps that loop. A State value lives for one document only; it is
// never shared between conversions.
//
// # Inline Formatting
//
// Inline applies its substitutions in a fixed order (bold, italic, code,
// links, images). Later rules see the output of earlier ones, so ambiguous
// input is resolved by priority rather than by conflict detection.
//
// No HTML escaping is performed outside fenced code blocks. Source
// documents are trusted.
package markdown
