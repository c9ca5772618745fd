// Package links rewrites relative links between Markdown sources so they
// point at the pages built from them.
package links

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrRewrite indicates a body the tokenizer could not read.
var ErrRewrite = errors.New("link rewrite failed")

// PageExt is the extension of built pages.
const PageExt = ".html"

// sourceExts are the extensions recognized as Markdown sources.
var sourceExts = map[string]bool{".md": true, ".markdown": true}

// Rewrite returns body with every relative a[href] naming a Markdown file
// changed to the page built from it: "guide/setup.md#install" becomes
// "guide/setup.html#install". Only rewritten tags are re-serialized; every
// other byte of body is copied unchanged.
//
// Does NOT rewrite:
//   - URLs with a scheme or host
//   - site-absolute paths and bare fragments
//   - img, script or any other element's attributes
func Rewrite(body string) (string, error) {
	if !strings.Contains(strings.ToLower(body), "<a") {
		return body, nil
	}

	z := html.NewTokenizer(strings.NewReader(body))
	var b strings.Builder
	b.Grow(len(body))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %v", ErrRewrite, err)
			}
			return b.String(), nil
		}

		raw := string(z.Raw())
		if tt != html.StartTagToken {
			b.WriteString(raw)
			continue
		}

		tok := z.Token()
		if tok.DataAtom != atom.A || !rewriteAttr(&tok, "href") {
			b.WriteString(raw)
			continue
		}
		b.WriteString(tok.String())
	}
}

// rewriteAttr rewrites the named attribute in place and reports whether it
// changed.
func rewriteAttr(tok *html.Token, key string) bool {
	for i, attr := range tok.Attr {
		if attr.Key != key {
			continue
		}
		if target, ok := PageLink(attr.Val); ok {
			tok.Attr[i].Val = target
			return true
		}
	}
	return false
}

// PageLink maps a relative link to a Markdown source onto the built page,
// keeping any query or fragment. ok is false when href is left as is.
func PageLink(href string) (target string, ok bool) {
	if !isRelative(href) {
		return href, false
	}

	p, rest := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		p, rest = href[:i], href[i:]
	}

	ext := path.Ext(p)
	if !sourceExts[strings.ToLower(ext)] {
		return href, false
	}
	return strings.TrimSuffix(p, ext) + PageExt + rest, true
}

// isRelative reports whether href is a path relative to the current page.
func isRelative(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
