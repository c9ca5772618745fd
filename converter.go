package mddocs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-mddocs/internal/assets"
	"github.com/alnah/go-mddocs/internal/engine"
	"github.com/alnah/go-mddocs/internal/fileutil"
	"github.com/alnah/go-mddocs/internal/highlight"
	"github.com/alnah/go-mddocs/internal/links"
	"github.com/alnah/go-mddocs/internal/page"
)

// Converter orchestrates the Markdown-to-page pipeline.
// Create with NewConverter and call Convert for each document.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	htmlConverter engine.HTMLConverter
	assembler     *page.Assembler
	style         string // resolved CSS, highlight rules included
}

// NewConverter creates a Converter. Assets, style and template are resolved
// here so that Convert only fails on per-document problems.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	var h *highlight.Highlighter
	if c.cfg.highlightStyle != "" {
		var err error
		h, err = highlight.New(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		css, err := h.CSS()
		if err != nil {
			return nil, err
		}
		c.style += "\n" + css
	}

	conv, err := engine.New(engine.Options{
		Name:           c.cfg.engineName,
		CloseOpenFence: c.cfg.closeOpenFence,
		Highlighter:    h,
	})
	if err != nil {
		return nil, err
	}
	c.htmlConverter = conv

	templateName := c.cfg.templateName
	if templateName == "" {
		templateName = assets.DefaultTemplate
	}
	tmpl, err := c.assetLoader.LoadTemplate(templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", templateName, err)
	}
	c.assembler, err = page.NewAssembler(tmpl)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", templateName, err)
	}

	return c, nil
}

// Convert renders input into a complete page.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := assets.ValidateStyle(input.CSS); err != nil {
		return nil, fmt.Errorf("input CSS: %w", err)
	}

	body, err := c.htmlConverter.ToHTML(ctx, normalizeLineEndings(input.Markdown))
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	if c.cfg.pageLinks {
		if body, err = links.Rewrite(body); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outline := page.Outline(body)
	title := strings.TrimSpace(input.Title)
	if title == "" && len(outline) > 0 {
		title = outline[0].Text
	}

	// Converter style first, input CSS last so it can override.
	css := c.style
	if input.CSS != "" {
		css += "\n" + input.CSS
	}

	doc, err := c.assembler.Assemble(ctx, page.Data{
		Title:        title,
		Lang:         c.cfg.lang,
		SidebarTitle: c.cfg.sidebarTitle,
		Style:        css,
		Body:         body,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	return &Result{
		HTML:     []byte(doc),
		Body:     body,
		Title:    title,
		Headings: headingsFrom(outline),
	}, nil
}

// resolveStyle turns the style input (name, path, or CSS content) into CSS
// and checks that it parses.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	var css string

	switch {
	case input == "":
		var err error
		css, err = c.assetLoader.LoadStyle(assets.DefaultStyle)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", assets.DefaultStyle, err)
		}
	case fileutil.IsCSS(input):
		css = input
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrStyleRead, input, err)
		}
		css = string(content)
	default:
		var err error
		css, err = c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, err)
		}
	}

	if err := assets.ValidateStyle(css); err != nil {
		return fmt.Errorf("style %q: %w", input, err)
	}
	c.style = css
	return nil
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
