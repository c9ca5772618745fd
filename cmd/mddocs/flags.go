package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds style and template selection.
type assetFlags struct {
	style     string // name, file path or inline CSS
	template  string
	assetPath string
}

// markdownFlags selects and tunes the Markdown engine.
type markdownFlags struct {
	engine         string
	highlight      string
	closeOpenFence bool
	keepLinks      bool
}

// siteFlags holds values shared by every page of a build.
type siteFlags struct {
	titlePrefix  string
	lang         string
	sidebarTitle string
	drafts       bool
}

// indexFlags controls the generated index page.
type indexFlags struct {
	enabled  bool
	disabled bool
	title    string
	updated  string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	output   string
	workers  int
	assets   assetFlags
	markdown markdownFlags
	site     siteFlags
	index    indexFlags
}

// verifyFlags holds all flags for the verify command.
type verifyFlags struct {
	common  commonFlags
	browser bool
	workers int
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or inline CSS")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addMarkdownFlags adds engine flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: builtin, goldmark")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks (e.g. monokai)")
	fs.BoolVar(&f.closeOpenFence, "close-fences", false, "close a code fence left open at end of file")
	fs.BoolVar(&f.keepLinks, "keep-md-links", false, "do not point .md links at built pages")
}

// addSiteFlags adds site-wide flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.titlePrefix, "title-prefix", "", "prefix page titles as \"PREFIX - Title\"")
	fs.StringVar(&f.lang, "lang", "", "html lang attribute (default en)")
	fs.StringVar(&f.sidebarTitle, "sidebar-title", "", "label above the navigation")
	fs.BoolVar(&f.drafts, "drafts", false, "include pages marked draft in front matter")
}

// addIndexFlags adds index page flags to a FlagSet.
func addIndexFlags(fs *flag.FlagSet, f *indexFlags) {
	fs.BoolVar(&f.enabled, "index", false, "generate index.html listing every page")
	fs.BoolVar(&f.disabled, "no-index", false, "do not generate index.html")
	fs.StringVar(&f.title, "index-title", "", "index page heading")
	fs.StringVar(&f.updated, "index-updated", "", "index date: \"auto\", \"auto:FORMAT\", or literal")
}

// newBuildFlagSet registers every build flag on a new FlagSet.
// Shared by parseBuildFlags and shell completion.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output directory, or .html file for a single input")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addMarkdownFlags(fs, &f.markdown)
	addSiteFlags(fs, &f.site)
	addIndexFlags(fs, &f.index)

	return fs
}

// newVerifyFlagSet registers every verify flag on a new FlagSet.
func newVerifyFlagSet(f *verifyFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)

	fs.BoolVarP(&f.browser, "browser", "b", false, "also run the page script in headless Chrome")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel browsers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page browser timeout (e.g. 30s, 1m)")
	addCommonFlags(fs, &f.common)

	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printBuildUsage(w) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseVerifyFlags parses verify command flags and returns positional args.
func parseVerifyFlags(args []string, w io.Writer) (*verifyFlags, []string, error) {
	f := &verifyFlags{}
	fs := newVerifyFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printVerifyUsage(w) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse, passing flag.ErrHelp through and wrapping every
// other failure in ErrUsage.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
