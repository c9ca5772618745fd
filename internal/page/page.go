// Package page assembles a rendered HTML body into a standalone document
// with an inline style sheet and a table-of-contents sidebar.
//
// The sidebar starts empty. A bootstrap script in the page template fills it
// on DOMContentLoaded from every h1, h2 and h3 in document order, indenting
// each entry by 15px per level below h1. Outline reproduces that list on the
// server side so callers can inspect it without a browser.
package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Defaults applied when Data leaves a field empty.
const (
	DefaultLang         = "en"
	DefaultSidebarTitle = "Navigation"
	DefaultTitle        = "Documentation"
)

// Sentinel errors for page assembly.
var (
	ErrTemplateParse = errors.New("page template parse failed")
	ErrRender        = errors.New("page rendering failed")
)

// Data holds the values substituted into the page template.
type Data struct {
	Title        string
	Lang         string
	SidebarTitle string
	Style        string // raw CSS, placed inside <style>
	Body         string // trusted HTML fragment, placed verbatim
}

// Assembler renders complete pages from a parsed template.
// It is safe for concurrent use.
type Assembler struct {
	tmpl *template.Template
}

// view is what the template actually sees. Style and Body are typed so that
// html/template inserts them without escaping.
type view struct {
	Title        string
	Lang         string
	SidebarTitle string
	Style        template.CSS
	Body         template.HTML
}

// NewAssembler parses tmpl as an html/template page.
func NewAssembler(tmpl string) (*Assembler, error) {
	t, err := template.New("page").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &Assembler{tmpl: t}, nil
}

// Assemble renders data into a full HTML document.
func (a *Assembler) Assemble(ctx context.Context, data Data) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	v := view{
		Title:        orDefault(data.Title, DefaultTitle),
		Lang:         orDefault(data.Lang, DefaultLang),
		SidebarTitle: orDefault(data.SidebarTitle, DefaultSidebarTitle),
		Style:        template.CSS(sanitizeCSS(data.Style)), // #nosec G203 -- closing sequences escaped
		Body:         template.HTML(data.Body),               // #nosec G203 -- body is produced by the converter
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS keeps a style sheet from closing its <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
