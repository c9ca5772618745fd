package mddocs

import (
	"errors"

	"github.com/alnah/go-mddocs/internal/assets"
	"github.com/alnah/go-mddocs/internal/engine"
	"github.com/alnah/go-mddocs/internal/highlight"
	"github.com/alnah/go-mddocs/internal/links"
	"github.com/alnah/go-mddocs/internal/page"
)

// Sentinel errors for library operations. Errors returned by the converter
// wrap these, so callers can test them with errors.Is.
var (
	ErrUnknownEngine   = engine.ErrUnknownEngine
	ErrHTMLConversion  = engine.ErrHTMLConversion
	ErrHighlight       = highlight.ErrHighlight
	ErrPageRender      = page.ErrRender
	ErrInvalidTemplate = page.ErrTemplateParse
	ErrLinkRewrite     = links.ErrRewrite

	// ErrUnknownHighlightStyle indicates a chroma style name that does not exist.
	ErrUnknownHighlightStyle = highlight.ErrUnknownStyle

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidStyle     = assets.ErrInvalidStyle
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleRead        = errors.New("failed to read style file")
)
