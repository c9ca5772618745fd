package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mddocs/internal/hints"
	"github.com/alnah/go-mddocs/internal/links"
	"github.com/alnah/go-mddocs/internal/verify"
)

// Sentinel errors for verify.
var (
	ErrNoPages        = errors.New("no HTML pages found")
	ErrInvalidTarget  = errors.New("verify target must be a directory or .html file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrVerifyFailed   = errors.New("verification failed")
)

// pageCheck is the verify outcome for one page.
type pageCheck struct {
	path   string
	report *verify.Report // nil when the page could not be read
	err    error
}

// runVerify checks built pages: the static outline always, and with
// --browser the sidebar Chrome renders from it.
func runVerify(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseVerifyFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	target := cfg.Output.DefaultDir
	if len(positional) > 0 {
		target = positional[0]
	}
	pages, err := discoverPages(target)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, target)
	}

	checks := make([]pageCheck, len(pages))
	for i, p := range pages {
		report, err := verify.InspectFile(p)
		checks[i] = pageCheck{path: p, report: report, err: err}
	}

	if flags.browser {
		timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
		if err != nil {
			return err
		}
		pool := NewBrowserPool(resolveBrowserWorkers(flags.workers), func() verify.SidebarReader {
			return env.NewSidebarReader(timeout)
		})
		defer func() { _ = pool.Close() }()

		checkRendered(ctx, pool, checks)
	}

	return summarizeChecks(checks, flags.common.quiet, flags.common.verbose, env)
}

// discoverPages lists the .html pages under target, or target itself.
func discoverPages(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !isPage(target) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
		}
		return []string{target}, nil
	}

	var pages []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if !d.IsDir() && isPage(path) {
			pages = append(pages, path)
		}
		return nil
	})
	return pages, err
}

func isPage(path string) bool {
	return strings.EqualFold(filepath.Ext(path), links.PageExt)
}

// resolveTimeout parses the --timeout flag, falling back to MDDOCS_TIMEOUT
// and then verify.DefaultTimeout.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	return verify.DefaultTimeout, nil
}

// checkRendered compares each statically inspected page with the sidebar
// the browser renders. Pages that failed static inspection are skipped.
func checkRendered(ctx context.Context, pool *BrowserPool, checks []pageCheck) {
	jobs := make(chan int, len(checks))
	for i, c := range checks {
		if c.err == nil {
			jobs <- i
		}
	}
	close(jobs)

	workers := min(pool.Size(), len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			reader, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					checks[idx].err = err
				}
				return
			}
			defer pool.Release(reader)

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					checks[idx].err = err
					continue
				}
				report := checks[idx].report
				got, err := reader.Sidebar(ctx, checks[idx].path)
				if err != nil {
					checks[idx].err = withBrowserHint(err)
					continue
				}
				report.Issues = append(report.Issues, verify.Compare(report.Entries, got)...)
			}
		}()
	}
	wg.Wait()
}

// withBrowserHint appends the hint matching a browser failure.
func withBrowserHint(err error) error {
	switch {
	case errors.Is(err, verify.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	}
	return err
}

// summarizeChecks prints one line per page and returns an error when any
// page failed. A browser error takes precedence so the exit code reflects it.
func summarizeChecks(checks []pageCheck, quiet, verbose bool, env *Environment) error {
	var failed int
	var firstErr error

	for _, c := range checks {
		switch {
		case c.err != nil:
			failed++
			if firstErr == nil {
				firstErr = c.err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", c.path, c.err)
		case !c.report.OK():
			failed++
			fmt.Fprintf(env.Stderr, "FAIL %s\n", c.path)
			for _, issue := range c.report.Issues {
				fmt.Fprintf(env.Stderr, "  - %s\n", issue)
			}
		case quiet:
		case verbose:
			fmt.Fprintf(env.Stdout, "OK %s (%d entries)\n", c.path, len(c.report.Entries))
		default:
			fmt.Fprintf(env.Stdout, "OK %s\n", c.path)
		}
	}

	if !quiet && len(checks) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d ok, %d failed\n", len(checks)-failed, failed)
	}

	if failed == 0 {
		return nil
	}
	if firstErr != nil && isBrowserError(firstErr) {
		return fmt.Errorf("%w: %d page(s): %w", ErrVerifyFailed, failed, firstErr)
	}
	return fmt.Errorf("%w: %d page(s)", ErrVerifyFailed, failed)
}

func isBrowserError(err error) bool {
	return errors.Is(err, verify.ErrBrowserConnect) ||
		errors.Is(err, verify.ErrPageCreate) ||
		errors.Is(err, verify.ErrPageLoad) ||
		errors.Is(err, verify.ErrSidebarRead)
}
