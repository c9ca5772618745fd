package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/alnah/go-mddocs/internal/page"
)

// Sentinel errors for page inspection.
var (
	ErrParse = errors.New("failed to parse page")
	ErrRead  = errors.New("failed to read page")
)

// IssueKind classifies a problem found on a page.
type IssueKind string

// Issue kinds.
const (
	IssueNoSidebar       IssueKind = "no-sidebar"
	IssueEmptyAnchor     IssueKind = "empty-anchor"
	IssueDuplicateAnchor IssueKind = "duplicate-anchor"
	IssueMismatch        IssueKind = "sidebar-mismatch"
)

// Issue is one problem on a page.
type Issue struct {
	Kind    IssueKind
	Message string
}

func (i Issue) String() string {
	return string(i.Kind) + ": " + i.Message
}

// Report is the result of inspecting one page.
type Report struct {
	Path    string
	Entries []page.Entry // sidebar the script will build
	Issues  []Issue
}

// OK reports whether the page has no issues.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

var (
	headingSelector = cascadia.MustCompile("h1, h2, h3")
	sidebarSelector = cascadia.MustCompile("#toc")
)

// Inspect parses a page and predicts its sidebar.
func Inspect(r io.Reader) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	report := &Report{}
	if sidebarSelector.MatchFirst(doc) == nil {
		report.Issues = append(report.Issues, Issue{
			Kind:    IssueNoSidebar,
			Message: `no element with id "toc"`,
		})
	}

	seen := make(map[string]int)
	for _, n := range headingSelector.MatchAll(doc) {
		level, _ := strconv.Atoi(n.Data[1:])
		entry := page.Entry{
			Level:  level,
			ID:     attr(n, "id"),
			Text:   textContent(n),
			Indent: (level - 1) * page.IndentStep,
		}
		report.Entries = append(report.Entries, entry)

		label := strings.TrimSpace(entry.Text)
		switch {
		case entry.ID == "":
			report.Issues = append(report.Issues, Issue{
				Kind:    IssueEmptyAnchor,
				Message: fmt.Sprintf("%s %q has no id; its link points to the top of the page", n.Data, label),
			})
		case seen[entry.ID] > 0:
			report.Issues = append(report.Issues, Issue{
				Kind:    IssueDuplicateAnchor,
				Message: fmt.Sprintf("%s %q reuses anchor #%s", n.Data, label, entry.ID),
			})
		}
		seen[entry.ID]++
	}

	return report, nil
}

// InspectFile inspects the page at path.
func InspectFile(path string) (*Report, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from discovery or the command line
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	report, err := Inspect(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	report.Path = path
	return report, nil
}

// Compare lists the differences between the predicted and the rendered
// sidebar, entry by entry.
func Compare(want, got []page.Entry) []Issue {
	var issues []Issue
	if len(want) != len(got) {
		issues = append(issues, Issue{
			Kind:    IssueMismatch,
			Message: fmt.Sprintf("sidebar has %d entries, want %d", len(got), len(want)),
		})
	}
	for i := 0; i < len(want) && i < len(got); i++ {
		if want[i] != got[i] {
			issues = append(issues, Issue{
				Kind:    IssueMismatch,
				Message: fmt.Sprintf("entry %d is %+v, want %+v", i, got[i], want[i]),
			})
		}
	}
	return issues
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates the text of n's descendants like the DOM property.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
