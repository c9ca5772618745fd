package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-mddocs/internal/page"
	"github.com/alnah/go-mddocs/internal/verify"
)

// fixedNow is the clock every test environment reports.
var fixedNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

// fakeSidebarReader returns canned sidebars without a browser.
type fakeSidebarReader struct {
	mu      sync.Mutex
	entries func(path string) ([]page.Entry, error)
	calls   int
	closed  bool
}

func (f *fakeSidebarReader) Sidebar(_ context.Context, path string) ([]page.Entry, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.entries(path)
}

func (f *fakeSidebarReader) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Compile-time interface implementation check.
var _ verify.SidebarReader = (*fakeSidebarReader)(nil)

// testEnv returns an environment writing to buffers. Browser checks read
// the sidebar back from the page itself unless the test replaces the reader.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		NewSidebarReader: func(time.Duration) verify.SidebarReader {
			return &fakeSidebarReader{entries: staticSidebar}
		},
	}
	return env, stdout, stderr
}

// staticSidebar predicts the sidebar from the saved page, which is what a
// correct script renders.
func staticSidebar(path string) ([]page.Entry, error) {
	report, err := verify.InspectFile(path)
	if err != nil {
		return nil, err
	}
	return report.Entries, nil
}

// writeFile creates path with content, including parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// newSite writes a small documentation tree and returns its root.
func newSite(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "docs")
	writeFile(t, filepath.Join(root, "README.md"), "# ChainGraph\n\nSee the [manual](guide/manual.md#setup).\n\n## Install\n\nRun it.\n")
	writeFile(t, filepath.Join(root, "guide", "manual.md"), "---\ndescription: Operator manual\n---\n# Manual\n\n## Setup\n\nSteps.\n\n### Network\n\nPorts.\n")
	writeFile(t, filepath.Join(root, "wip.md"), "+++\ndraft = true\n+++\n# Work in progress\n")
	writeFile(t, filepath.Join(root, ".hidden", "secret.md"), "# Secret\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "not markdown")
	return root
}
