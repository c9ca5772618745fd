// Package mddocs converts Markdown documents into standalone HTML pages with
// an inline style sheet and a table-of-contents sidebar.
//
// # Quick Start
//
//	conv, err := mddocs.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mddocs.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0644)
//
// # Conversion Pipeline
//
//  1. Line-ending normalization
//  2. Markdown to HTML body via the builtin line parser or goldmark
//  3. Optional syntax highlighting of fenced code (chroma)
//  4. Page assembly: template, style sheet, sidebar bootstrap script
//
// The builtin engine understands a deliberately small dialect: ATX headings,
// flat lists, fenced code, pipe tables, horizontal rules and paragraphs with
// bold, italic, code spans, links and images. Use WithEngine(EngineGoldmark)
// for full CommonMark.
//
// # Configuration
//
//	conv, err := mddocs.NewConverter(
//	    mddocs.WithStyle("light"),
//	    mddocs.WithAssetPath("/path/to/custom/assets"),
//	    mddocs.WithHighlighting("monokai"),
//	    mddocs.WithLang("zh-CN"),
//	)
//
// A Converter holds no per-conversion state and is safe for concurrent use.
package mddocs
