package main

// Notes:
// - runMain: we test dispatch and exit codes. Page output is covered by
//   build_test.go.
// - main() itself only wires os.Args and os.Exit.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no arguments",
			args:       []string{"mddocs"},
			wantCode:   ExitUsage,
			wantStderr: "Usage: mddocs",
		},
		{
			name:       "version",
			args:       []string{"mddocs", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "mddocs dev",
		},
		{
			name:       "help",
			args:       []string{"mddocs", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Commands:",
		},
		{
			name:       "help for build",
			args:       []string{"mddocs", "help", "build"},
			wantCode:   ExitSuccess,
			wantStdout: "--title-prefix",
		},
		{
			name:       "unknown command",
			args:       []string{"mddocs", "publish"},
			wantCode:   ExitUsage,
			wantStderr: "Unknown command: publish",
		},
		{
			name:       "unknown flag",
			args:       []string{"mddocs", "build", "--pdf"},
			wantCode:   ExitUsage,
			wantStderr: "invalid usage",
		},
		{
			name:       "missing input",
			args:       []string{"mddocs", "build", filepath.Join("no", "such", "dir")},
			wantCode:   ExitIO,
			wantStderr: "discovering files",
		},
		{
			name:       "unsupported shell",
			args:       []string{"mddocs", "completion", "tcsh"},
			wantCode:   ExitUsage,
			wantStderr: "unsupported shell",
		},
		{
			name:       "completion",
			args:       []string{"mddocs", "completion", "bash"},
			wantCode:   ExitSuccess,
			wantStdout: "complete -o filenames -F _mddocs mddocs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_InputWithoutCommand(t *testing.T) {
	t.Parallel()

	root := newSite(t)
	out := filepath.Join(t.TempDir(), "site")
	env, _, stderr := testEnv()

	code := runMain([]string{"mddocs", root, "-o", out, "-q"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "README.html")); err != nil {
		t.Errorf("README.html not built: %v", err)
	}
}

func TestIsCommand(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"build", "convert", "verify", "config", "doctor", "completion", "version", "help"} {
		if !isCommand(name) {
			t.Errorf("isCommand(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "Build", "serve", "README.md"} {
		if isCommand(name) {
			t.Errorf("isCommand(%q) = true, want false", name)
		}
	}
}

func TestLooksLikeInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		arg  string
		want bool
	}{
		{"README.md", true},
		{"docs/", true},
		{`docs\guide`, true},
		{".", true},
		{dir, true},
		{"publish", false},
	}

	for _, tt := range tests {
		if got := looksLikeInput(tt.arg); got != tt.want {
			t.Errorf("looksLikeInput(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
