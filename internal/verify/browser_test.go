package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/alnah/go-mddocs/internal/page"
)

func TestParseSidebar(t *testing.T) {
	t.Parallel()

	raw := `[{"href":"#intro","text":"Intro","margin":"0px"},{"href":"#deep","text":"Deep","margin":"30px"}]`
	got, err := parseSidebar(raw)
	if err != nil {
		t.Fatalf("parseSidebar() error = %v", err)
	}
	want := []page.Entry{
		{Level: 1, ID: "intro", Text: "Intro", Indent: 0},
		{Level: 3, ID: "deep", Text: "Deep", Indent: 30},
	}
	if issues := Compare(want, got); len(issues) != 0 {
		t.Errorf("parseSidebar() mismatch: %v", issues)
	}
}

func TestParseSidebar_Errors(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"not json", `[{"href":"#a","text":"A","margin":"wide"}]`} {
		if _, err := parseSidebar(raw); !errors.Is(err, ErrSidebarRead) {
			t.Errorf("parseSidebar(%q) error = %v, want ErrSidebarRead", raw, err)
		}
	}
}

func TestParseSidebar_Empty(t *testing.T) {
	t.Parallel()

	got, err := parseSidebar("[]")
	if err != nil || len(got) != 0 {
		t.Errorf("parseSidebar([]) = %v, %v", got, err)
	}
}

func TestBrowserChecker_CanceledBeforeLaunch(t *testing.T) {
	t.Parallel()

	b := NewBrowserChecker(0)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Sidebar(ctx, "index.html"); !errors.Is(err, context.Canceled) {
		t.Errorf("Sidebar() error = %v, want context.Canceled", err)
	}
	if b.browser != nil {
		t.Error("canceled check should not launch a browser")
	}
}

func TestBrowserChecker_CloseWithoutLaunch(t *testing.T) {
	t.Parallel()

	if err := NewBrowserChecker(0).Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain path", "/site/index.html", "file:///site/index.html"},
		{"space escaped", "/my site/index.html", "file:///my%20site/index.html"},
		{"hash escaped", "/docs/c#/index.html", "file:///docs/c%23/index.html"},
		{"question mark escaped", "/docs/why?/a.html", "file:///docs/why%3F/a.html"},
		{"percent escaped", "/docs/100%/a.html", "file:///docs/100%25/a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileURL(tt.path); got != tt.want {
				t.Errorf("fileURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
