package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "default style carries sidebar rules",
			styleName:   "default",
			wantContain: ".sidebar",
		},
		{
			name:        "light style",
			styleName:   "light",
			wantContain: ".table",
		},
		{
			name:      "unknown style",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "traversal rejected",
			styleName: "../styles/default",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "extension rejected",
			styleName: "default.css",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "empty name rejected",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) missing %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplate, err)
	}
	for _, want := range []string{`id="toc"`, "DOMContentLoaded", "{{.Body}}", "{{.Style}}"} {
		if !strings.Contains(got, want) {
			t.Errorf("page template missing %q", want)
		}
	}

	if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestBuiltinStylesParse(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"default", "light"} {
		css, err := LoadStyle(name)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", name, err)
		}
		if err := ValidateStyle(css); err != nil {
			t.Errorf("ValidateStyle(%q) error = %v", name, err)
		}
	}
}

func TestPackageLoaders(t *testing.T) {
	t.Parallel()

	if _, err := LoadStyle(DefaultStyle); err != nil {
		t.Errorf("LoadStyle(DefaultStyle) error = %v", err)
	}
	if _, err := LoadTemplate(DefaultTemplate); err != nil {
		t.Errorf("LoadTemplate(DefaultTemplate) error = %v", err)
	}
}

func TestListStyles(t *testing.T) {
	t.Parallel()

	got := ListStyles()
	want := []string{"default", "light"}
	if len(got) != len(want) {
		t.Fatalf("ListStyles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListStyles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
