package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	mddocs "github.com/alnah/go-mddocs"
	"github.com/alnah/go-mddocs/internal/assets"
	"github.com/alnah/go-mddocs/internal/config"
	"github.com/alnah/go-mddocs/internal/dateutil"
	"github.com/alnah/go-mddocs/internal/fileutil"
	"github.com/alnah/go-mddocs/internal/hints"
	"github.com/alnah/go-mddocs/internal/source"
)

// Sentinel errors for build operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrNoMarkdown   = errors.New("no markdown files found")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrBuildFailed  = errors.New("build failed")
)

// indexName is the file written for the generated index page.
const indexName = "index.html"

// PageConverter is the part of mddocs.Converter a build needs.
type PageConverter interface {
	Convert(ctx context.Context, input mddocs.Input) (*mddocs.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mddocs.Converter)(nil)

// ConversionResult holds the outcome of a single page.
type ConversionResult struct {
	InputPath   string
	OutputPath  string
	Title       string // without site prefix
	Description string
	Skipped     bool // draft left out of the build
	Err         error
	Duration    time.Duration
}

// buildParams groups settings shared by every page of a build.
type buildParams struct {
	cfg    *config.Config
	drafts bool
}

// runBuild converts a Markdown file or tree into HTML pages.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	setMaxProcs(env, flags.common.verbose)

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdown, inputPath)
	}

	conv, err := newConverter(cfg, !flags.markdown.keepLinks)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = resolveWorkers(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	params := &buildParams{cfg: cfg, drafts: flags.site.drafts}
	results := convertBatch(ctx, conv, workers, files, params)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	if cfg.Index.Enabled {
		if isDir(inputPath) {
			if err := writeIndex(ctx, conv, cfg, outputDir, results, flags.common.quiet, env); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(env.Stderr, "warning: index skipped, input is a single file")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d page(s) failed", ErrBuildFailed, failed)
	}
	return nil
}

// loadConfig loads the named config, or returns the defaults when no name
// is given by flag or MDDOCS_CONFIG.
func loadConfig(flagName string, envCfg *envConfig) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(name) {
				searched = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.assets.style != "" {
		cfg.CSS.Style = flags.assets.style
	}
	if flags.assets.template != "" {
		cfg.Assets.Template = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	if flags.markdown.engine != "" {
		cfg.Markdown.Engine = flags.markdown.engine
	}
	if flags.markdown.highlight != "" {
		cfg.Markdown.Highlight = flags.markdown.highlight
	}
	if flags.markdown.closeOpenFence {
		cfg.Markdown.CloseOpenFence = true
	}

	if flags.site.titlePrefix != "" {
		cfg.Site.TitlePrefix = flags.site.titlePrefix
	}
	if flags.site.lang != "" {
		cfg.Site.Lang = flags.site.lang
	}
	if flags.site.sidebarTitle != "" {
		cfg.Site.SidebarTitle = flags.site.sidebarTitle
	}

	if flags.index.title != "" {
		cfg.Index.Title = flags.index.title
	}
	if flags.index.updated != "" {
		cfg.Index.Updated = flags.index.updated
	}
	if flags.index.enabled {
		cfg.Index.Enabled = true
	}
	// Disable flag last so it wins over --index and the config file.
	if flags.index.disabled {
		cfg.Index.Enabled = false
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// newConverter builds the library converter from the merged config and
// appends a hint to errors the user can fix.
func newConverter(cfg *config.Config, pageLinks bool) (*mddocs.Converter, error) {
	conv, err := mddocs.NewConverter(
		mddocs.WithStyle(cfg.CSS.Style),
		mddocs.WithAssetPath(cfg.Assets.BasePath),
		mddocs.WithTemplate(cfg.Assets.Template),
		mddocs.WithEngine(strings.ToLower(cfg.Markdown.Engine)),
		mddocs.WithHighlighting(cfg.Markdown.Highlight),
		mddocs.WithCloseOpenFence(cfg.Markdown.CloseOpenFence),
		mddocs.WithLang(cfg.Site.Lang),
		mddocs.WithSidebarTitle(cfg.Site.SidebarTitle),
		mddocs.WithPageLinks(pageLinks),
	)
	if err == nil {
		return conv, nil
	}

	var hint string
	switch {
	case errors.Is(err, mddocs.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(assets.ListStyles())
	case errors.Is(err, mddocs.ErrUnknownHighlightStyle):
		hint = hints.ForHighlightStyle()
	case errors.Is(err, mddocs.ErrUnknownEngine):
		hint = hints.ForUnknownEngine()
	}
	return nil, fmt.Errorf("%w%s", err, hint)
}

// convertBatch converts files with a fixed number of workers sharing conv.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv PageConverter, workers int, files []FileToConvert, params *buildParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile builds a single page and returns the result.
func convertFile(ctx context.Context, conv PageConverter, f FileToConvert, params *buildParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	doc, err := source.Load(f.InputPath)
	if err != nil {
		if errors.Is(err, source.ErrFrontMatter) {
			return done(fmt.Errorf("%w%s", err, hints.ForFrontMatter()))
		}
		return done(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}
	if doc.Meta.Draft && !params.drafts {
		result.Skipped = true
		return done(nil)
	}

	cfg := params.cfg
	result.Title = doc.Title(cfg.PageTitle(f.RelPath))
	result.Description = doc.Description()

	res, err := conv.Convert(ctx, mddocs.Input{
		Markdown: doc.Body,
		Title:    source.WithPrefix(cfg.Site.TitlePrefix, result.Title),
	})
	if err != nil {
		return done(err)
	}

	if err := fileutil.WriteOutput(f.OutputPath, res.HTML); err != nil {
		return done(fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory()))
	}
	return done(nil)
}

// writeIndex generates the hub page listing every built page. It is left
// out when a source already maps to index.html.
func writeIndex(ctx context.Context, conv PageConverter, cfg *config.Config, outputDir string, results []ConversionResult, quiet bool, env *Environment) error {
	indexPath := filepath.Join(outputDir, indexName)

	entries := make([]source.IndexEntry, 0, len(results))
	for _, r := range results {
		if r.Err != nil || r.Skipped {
			continue
		}
		if filepath.Clean(r.OutputPath) == filepath.Clean(indexPath) {
			fmt.Fprintf(env.Stderr, "warning: index skipped, %s is built from %s\n", indexPath, r.InputPath)
			return nil
		}
		entries = append(entries, source.IndexEntry{
			Title:       r.Title,
			Link:        source.RelativeLink(outputDir, r.OutputPath),
			Description: r.Description,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Link < entries[j].Link })

	updated, err := dateutil.Resolve(cfg.Index.Updated, env.Now())
	if err != nil {
		return fmt.Errorf("index date: %w", err)
	}

	idx := source.Index{Title: cfg.Index.Title, Updated: updated, Entries: entries}
	res, err := conv.Convert(ctx, mddocs.Input{
		Markdown: idx.Markdown(),
		Title:    source.WithPrefix(cfg.Site.TitlePrefix, cfg.Index.Title),
	})
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	if err := fileutil.WriteOutput(indexPath, res.HTML); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d pages)\n", indexPath, len(entries))
	}
	return nil
}

// ResultSummary holds the outcome counts of a build.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// countResults tallies the outcomes.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs per-page lines and a summary, returning the number
// of failures.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
		case quiet:
		case r.Skipped:
			if verbose {
				fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.InputPath)
			}
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.Skipped > 0 {
			fmt.Fprintf(env.Stdout, ", %d skipped", summary.Skipped)
		}
		fmt.Fprintln(env.Stdout)
	}

	return summary.Failed
}
