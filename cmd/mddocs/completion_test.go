package main

// Notes:
// - GenerateCompletion: we check that each script names the commands and
//   flags. Running the scripts in their shells is out of scope.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_mddocs()",
				"complete -o filenames -F _mddocs mddocs",
				"build)",
				"--title-prefix",
				`--engine|-e) COMPREPLY=($(compgen -W "builtin goldmark"`,
				`--output|-o) COMPREPLY=($(compgen -d`,
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef mddocs",
				"_arguments",
				"'verify:Check built pages'",
				":engine:(builtin goldmark)",
				`_files -g "*.yaml" -g "*.yml"`,
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"__fish_mddocs_using_command",
				"-l output -s o",
				"-l engine -s e -x -a 'builtin goldmark'",
				"-a 'bash zsh fish powershell'",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName mddocs",
				"CompletionResult",
				"'--index-updated'",
				"'--browser'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "sh", "tcsh"} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
		}
		if buf.Len() != 0 {
			t.Errorf("GenerateCompletion(%q) wrote output", shell)
		}
	}
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateCompletion_WriteError(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell} {
		if err := GenerateCompletion(failingWriter{}, shell); err == nil {
			t.Errorf("GenerateCompletion(%q) to a failing writer returned nil", shell)
		}
	}
}

func TestRunCompletion_NoArgs(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Usage: mddocs completion <shell>") {
		t.Errorf("stdout = %q, want usage", stdout)
	}
}

func TestGetCommands_FlagsFromFlagSets(t *testing.T) {
	t.Parallel()

	byName := make(map[string]commandDef)
	for _, c := range getCommands() {
		byName[c.Name] = c
	}

	for _, name := range []string{"build", "convert", "verify", "config", "doctor", "completion", "version", "help"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("command %q missing from completion registry", name)
		}
	}

	flags := make(map[string]flagDef)
	for _, f := range byName["build"].Flags {
		flags[f.Long] = f
	}

	tests := []struct {
		long  string
		short string
		typ   flagType
	}{
		{"output", "o", flagDir},
		{"workers", "w", flagInt},
		{"config", "c", flagFile},
		{"engine", "e", flagEnum},
		{"drafts", "", flagBool},
		{"title-prefix", "", flagString},
	}
	for _, tt := range tests {
		f, ok := flags[tt.long]
		if !ok {
			t.Errorf("build flag --%s missing", tt.long)
			continue
		}
		if f.Short != tt.short || f.Type != tt.typ {
			t.Errorf("--%s = {Short: %q, Type: %d}, want {Short: %q, Type: %d}", tt.long, f.Short, f.Type, tt.short, tt.typ)
		}
	}
}
