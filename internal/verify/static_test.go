package verify

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mddocs/internal/page"
)

const sidebarShell = `<html><body><nav class="sidebar"><div class="sidebar-title">Nav</div><div id="toc"></div></nav><main>%s</main></body></html>`

func pageWith(body string) string {
	return strings.Replace(sidebarShell, "%s", body, 1)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		doc         string
		wantEntries []page.Entry
		wantIssues  []IssueKind
	}{
		{
			name:        "no headings",
			doc:         pageWith("<p>x</p>"),
			wantEntries: nil,
		},
		{
			name: "document order and indentation",
			doc:  pageWith(`<h2 id="b">B</h2><h1 id="a">A</h1><h3 id="c">C <code>x</code></h3><h4 id="d">D</h4>`),
			wantEntries: []page.Entry{
				{Level: 2, ID: "b", Text: "B", Indent: 15},
				{Level: 1, ID: "a", Text: "A", Indent: 0},
				{Level: 3, ID: "c", Text: "C x", Indent: 30},
			},
		},
		{
			name: "duplicate anchors",
			doc:  pageWith(`<h2 id="usage">Usage</h2><h2 id="usage">Usage</h2>`),
			wantEntries: []page.Entry{
				{Level: 2, ID: "usage", Text: "Usage", Indent: 15},
				{Level: 2, ID: "usage", Text: "Usage", Indent: 15},
			},
			wantIssues: []IssueKind{IssueDuplicateAnchor},
		},
		{
			name:        "heading without id",
			doc:         pageWith(`<h1>Bare</h1>`),
			wantEntries: []page.Entry{{Level: 1, ID: "", Text: "Bare", Indent: 0}},
			wantIssues:  []IssueKind{IssueEmptyAnchor},
		},
		{
			name:        "missing sidebar",
			doc:         `<html><body><h1 id="x">X</h1></body></html>`,
			wantEntries: []page.Entry{{Level: 1, ID: "x", Text: "X", Indent: 0}},
			wantIssues:  []IssueKind{IssueNoSidebar},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report, err := Inspect(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}
			if len(report.Entries) != len(tt.wantEntries) {
				t.Fatalf("Entries = %+v, want %+v", report.Entries, tt.wantEntries)
			}
			for i := range tt.wantEntries {
				if report.Entries[i] != tt.wantEntries[i] {
					t.Errorf("Entries[%d] = %+v, want %+v", i, report.Entries[i], tt.wantEntries[i])
				}
			}
			if len(report.Issues) != len(tt.wantIssues) {
				t.Fatalf("Issues = %v, want kinds %v", report.Issues, tt.wantIssues)
			}
			for i, kind := range tt.wantIssues {
				if report.Issues[i].Kind != kind {
					t.Errorf("Issues[%d].Kind = %s, want %s", i, report.Issues[i].Kind, kind)
				}
			}
			if report.OK() != (len(tt.wantIssues) == 0) {
				t.Errorf("OK() = %v", report.OK())
			}
		})
	}
}

func TestInspect_AgreesWithOutline(t *testing.T) {
	t.Parallel()

	body := `<h1 id="intro">Intro</h1><p>a</p><h2 id="setup">Setup</h2><h3 id="linux">Linux</h3><h5 id="x">X</h5>`
	report, err := Inspect(strings.NewReader(pageWith(body)))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if issues := Compare(page.Outline(body), report.Entries); len(issues) != 0 {
		t.Errorf("Outline and Inspect disagree: %v", issues)
	}
}

func TestInspectFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(pageWith(`<h1 id="a">A</h1>`)), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := InspectFile(path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if report.Path != path || len(report.Entries) != 1 {
		t.Errorf("report = %+v", report)
	}

	if _, err := InspectFile(filepath.Join(t.TempDir(), "missing.html")); !errors.Is(err, ErrRead) {
		t.Errorf("InspectFile(missing) error = %v, want ErrRead", err)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := page.Entry{Level: 1, ID: "a", Text: "A", Indent: 0}
	b := page.Entry{Level: 2, ID: "b", Text: "B", Indent: 15}

	tests := []struct {
		name string
		want []page.Entry
		got  []page.Entry
		n    int
	}{
		{"equal", []page.Entry{a, b}, []page.Entry{a, b}, 0},
		{"both empty", nil, nil, 0},
		{"missing entry", []page.Entry{a, b}, []page.Entry{a}, 1},
		{"different entry", []page.Entry{a, b}, []page.Entry{a, a}, 1},
		{"length and content", []page.Entry{a, b}, []page.Entry{b}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := Compare(tt.want, tt.got)
			if len(issues) != tt.n {
				t.Errorf("Compare() = %v, want %d issues", issues, tt.n)
			}
			for _, is := range issues {
				if is.Kind != IssueMismatch {
					t.Errorf("issue kind = %s, want %s", is.Kind, IssueMismatch)
				}
			}
		})
	}
}
