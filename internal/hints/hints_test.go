package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func stubContainer(t *testing.T, inContainer bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return inContainer }
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		inContainer bool
		ci          string
		noSandbox   string
		browserBin  string
		want        []string
		notWant     []string
	}{
		{
			name: "CI without sandbox setting",
			ci:   "true",
			want: []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--browser"},
		},
		{
			name:        "Docker without sandbox setting",
			inContainer: true,
			want:        []string{"ROD_NO_SANDBOX"},
		},
		{
			name:      "sandbox already disabled",
			ci:        "true",
			noSandbox: "1",
			notWant:   []string{"ROD_NO_SANDBOX"},
		},
		{
			name:       "browser binary already set",
			browserBin: "/usr/bin/chrome",
			notWant:    []string{"ROD_BROWSER_BIN", "ROD_NO_SANDBOX"},
		},
		{
			name:        "everything configured",
			inContainer: true,
			ci:          "true",
			noSandbox:   "1",
			browserBin:  "/usr/bin/chrome",
			want:        []string{"drop --browser"},
			notWant:     []string{"ROD_"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubContainer(t, tt.inContainer)
			t.Setenv("CI", tt.ci)
			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("JENKINS_URL", "")
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint format inconsistent: %q", hint)
			}
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("hint %q should contain %q", hint, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(hint, nw) {
					t.Errorf("hint %q should not contain %q", hint, nw)
				}
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"site.yaml", "/home/me/.config/go-mddocs/site.yaml"},
			contains: "or create /home/me/.config/go-mddocs/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
	if hint := ForStyleNotFound([]string{"default", "light"}); !strings.Contains(hint, "default, light") {
		t.Errorf("expected style list, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := map[string]string{
		"timeout":     ForTimeout(),
		"output":      ForOutputDirectory(),
		"highlight":   ForHighlightStyle(),
		"frontmatter": ForFrontMatter(),
		"engine":      ForUnknownEngine(),
	}

	for name, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("%s hint format inconsistent: %q", name, h)
		}
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
