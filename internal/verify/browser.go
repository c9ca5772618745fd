package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-mddocs/internal/fileutil"
	"github.com/alnah/go-mddocs/internal/page"
	"github.com/alnah/go-mddocs/internal/process"
)

// Sentinel errors for browser checks.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrSidebarRead    = errors.New("failed to read rendered sidebar")
)

// DefaultTimeout bounds a single page check when ctx has no deadline.
const DefaultTimeout = 30 * time.Second

// sidebarScript collects the entries the bootstrap script appended to #toc.
const sidebarScript = `() => JSON.stringify(Array.from(document.querySelectorAll('#toc li')).map(function(li) {
	var a = li.querySelector('a');
	return {
		href: a ? a.getAttribute('href') : '',
		text: a ? a.textContent : '',
		margin: li.style.marginLeft
	};
}))`

// renderedLink mirrors one object produced by sidebarScript.
type renderedLink struct {
	Href   string `json:"href"`
	Text   string `json:"text"`
	Margin string `json:"margin"`
}

// SidebarReader returns the sidebar a page shows once its scripts ran.
type SidebarReader interface {
	Sidebar(ctx context.Context, path string) ([]page.Entry, error)
	Close() error
}

// BrowserChecker reads rendered sidebars with headless Chrome.
// Rod downloads Chromium on first use unless ROD_BROWSER_BIN is set.
// A BrowserChecker is not safe for concurrent use.
type BrowserChecker struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// NewBrowserChecker creates a checker. The browser starts on first use.
func NewBrowserChecker(timeout time.Duration) *BrowserChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BrowserChecker{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (b *BrowserChecker) ensureBrowser() error {
	if b.browser != nil {
		return nil
	}

	l := launcher.New()
	// Pre-installed browser for containerized environments.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	// NoSandbox is required for CI and containers.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b.launcher = l
	b.browser = browser
	return nil
}

// Close shuts the browser down and kills any helper processes left behind.
func (b *BrowserChecker) Close() error {
	if b.browser == nil {
		return nil
	}
	err := b.browser.Close()
	process.KillGroup(b.launcher.PID())
	b.launcher.Kill()
	b.browser = nil
	b.launcher = nil
	return err
}

// Sidebar opens the page at path and returns the sidebar entries the
// bootstrap script built.
func (b *BrowserChecker) Sidebar(ctx context.Context, path string) ([]page.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	if err := b.ensureBrowser(); err != nil {
		return nil, err
	}

	p, err := b.browser.Page(proto.TargetCreateTarget{URL: fileURL(abs)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer p.Close()

	timeout := b.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	p = p.Context(ctx).Timeout(timeout)

	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	res, err := p.Eval(sidebarScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSidebarRead, err)
	}
	return parseSidebar(res.Value.Str())
}

// SidebarHTML checks an in-memory page by writing it to a temporary file.
func (b *BrowserChecker) SidebarHTML(ctx context.Context, doc string) ([]page.Entry, error) {
	path, cleanup, err := fileutil.WriteTempFile(doc, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return b.Sidebar(ctx, path)
}

// parseSidebar decodes the JSON produced by sidebarScript.
func parseSidebar(raw string) ([]page.Entry, error) {
	var links []renderedLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSidebarRead, err)
	}

	entries := make([]page.Entry, 0, len(links))
	for _, l := range links {
		indent, err := strconv.Atoi(strings.TrimSuffix(l.Margin, "px"))
		if err != nil {
			return nil, fmt.Errorf("%w: margin %q", ErrSidebarRead, l.Margin)
		}
		entries = append(entries, page.Entry{
			Level:  indent/page.IndentStep + 1,
			ID:     strings.TrimPrefix(l.Href, "#"),
			Text:   l.Text,
			Indent: indent,
		})
	}
	return entries, nil
}

var _ SidebarReader = (*BrowserChecker)(nil)

// fileURL converts an absolute path to a file:// URL, escaping characters
// such as '#' and '?' that would otherwise end the path.
func fileURL(abs string) string {
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
