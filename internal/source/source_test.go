package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		wantMeta Meta
		wantBody string
	}{
		{
			name:     "no front matter",
			src:      "# Title\n\nBody\n",
			wantBody: "# Title\n\nBody\n",
		},
		{
			name:     "yaml front matter",
			src:      "---\ntitle: Manual\ndescription: Complete guide\n---\n# Heading\n",
			wantMeta: Meta{Title: "Manual", Description: "Complete guide"},
			wantBody: "# Heading",
		},
		{
			name:     "toml front matter",
			src:      "+++\ntitle = \"Manual\"\ndraft = true\n+++\nbody\n",
			wantMeta: Meta{Title: "Manual", Draft: true},
			wantBody: "body",
		},
		{
			name:     "draft flag and summary",
			src:      "---\ndraft: true\nsummary: Short\n---\ntext\n",
			wantMeta: Meta{Draft: true, Summary: "Short"},
			wantBody: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse("doc.md", []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Meta != tt.wantMeta {
				t.Errorf("Meta = %+v, want %+v", doc.Meta, tt.wantMeta)
			}
			if !strings.Contains(doc.Body, tt.wantBody) {
				t.Errorf("Body = %q, want it to contain %q", doc.Body, tt.wantBody)
			}
			if strings.Contains(doc.Body, "---") || strings.Contains(doc.Body, "+++") {
				t.Errorf("Body = %q, front matter delimiters should be removed", doc.Body)
			}
		})
	}
}

func TestParse_InvalidFrontMatter(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad.md", []byte("---\ntitle: [unclosed\n---\nbody\n"))
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("Parse() error = %v, want ErrFrontMatter", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "guide.md")
	if err := os.WriteFile(path, []byte("# Guide\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Path != path {
		t.Errorf("Path = %q, want %q", doc.Path, path)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.md")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      Document
		override string
		want     string
	}{
		{
			name:     "override wins",
			doc:      Document{Path: "a.md", Meta: Meta{Title: "Meta"}, Body: "# Heading"},
			override: "Explicit",
			want:     "Explicit",
		},
		{
			name: "front matter before heading",
			doc:  Document{Path: "a.md", Meta: Meta{Title: "Meta"}, Body: "# Heading"},
			want: "Meta",
		},
		{
			name: "first level-one heading",
			doc:  Document{Path: "a.md", Body: "intro\n## Sub\n# Main Title  \n# Second"},
			want: "Main Title",
		},
		{
			name: "comment inside code fence is not a heading",
			doc:  Document{Path: "README.md", Body: "```bash\n# install dependencies\ncargo build\n```\n\n# ChainGraph"},
			want: "ChainGraph",
		},
		{
			name: "only fenced comments falls back to file name",
			doc:  Document{Path: "setup.md", Body: "```python\n# configure logging\n```"},
			want: "setup",
		},
		{
			name: "heading marker needs text on the same line",
			doc:  Document{Path: "docs/install-guide.md", Body: "#\n\nbody"},
			want: "install-guide",
		},
		{
			name:     "blank override ignored",
			doc:      Document{Path: "README.markdown"},
			override: "   ",
			want:     "README",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.doc.Title(tt.override); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocument_Description(t *testing.T) {
	t.Parallel()

	d := Document{Meta: Meta{Summary: "s"}}
	if got := d.Description(); got != "s" {
		t.Errorf("Description() = %q, want summary fallback", got)
	}
	d.Meta.Description = "d"
	if got := d.Description(); got != "d" {
		t.Errorf("Description() = %q, want %q", got, "d")
	}
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()

	if got := WithPrefix("ChainGraph", "README"); got != "ChainGraph - README" {
		t.Errorf("WithPrefix() = %q", got)
	}
	if got := WithPrefix(" ", "README"); got != "README" {
		t.Errorf("WithPrefix(blank) = %q", got)
	}
}
