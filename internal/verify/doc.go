// Package verify checks generated pages for sidebar problems.
//
// The static check parses a page with golang.org/x/net/html and selects
// headings with the same selector the bootstrap script uses, so it predicts
// the sidebar without running any JavaScript. It reports headings without an
// anchor, anchors used twice, and pages lacking the sidebar container.
//
// The browser check opens the page in headless Chrome through go-rod, lets
// the script run and reads the sidebar it built. Compare reports any
// difference between the two.
package verify
