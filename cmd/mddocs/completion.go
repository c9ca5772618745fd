package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional values, e.g. shell names
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion hints for flags. Names, types and
// descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"engine": {Values: []string{"builtin", "goldmark"}},

	"config": {FileGlob: "*.yaml,*.yml"},
	"style":  {FileGlob: "*.css"},

	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "uint":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// configCompletionFlags mirrors the flags registered by runConfig.
func configCompletionFlags() []flagDef {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringP("config", "c", "", "config file name or path")
	fs.Bool("paths", false, "list where a config name is searched")
	return extractFlagsFromFlagSet(fs)
}

// getCommands returns the command registry for completion.
// Build and verify flags come from the FlagSets the commands parse with.
func getCommands() []commandDef {
	buildDefs := extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{}))
	verifyDefs := extractFlagsFromFlagSet(newVerifyFlagSet(&verifyFlags{}))

	return []commandDef{
		{
			Name:        "build",
			Desc:        "Build HTML pages from markdown",
			Flags:       buildDefs,
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:        "convert",
			Desc:        "Alias for build",
			Flags:       buildDefs,
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:  "verify",
			Desc:  "Check built pages",
			Flags: verifyDefs,
		},
		{
			Name:  "config",
			Desc:  "Print the effective configuration",
			Flags: configCompletionFlags(),
		},
		{
			Name: "doctor",
			Desc: "Check system configuration",
			Flags: []flagDef{
				{Long: "json", Type: flagBool, Desc: "output in JSON format"},
				{Long: "styles", Type: flagBool, Desc: "list page and code highlight styles"},
			},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}
}

// commandNames returns the names of every completable command.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagWords returns every spelling of the flags, as typed on the command line.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// globs splits a comma separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, cmds)
	case ShellZsh:
		return generateZsh(w, cmds)
	case ShellFish:
		return generateFish(w, cmds)
	case ShellPowerShell:
		return generatePowerShell(w, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// scriptWriter accumulates the first write error so generators can emit
// many lines without checking each one.
type scriptWriter struct {
	w   io.Writer
	err error
}

func (s *scriptWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// generateBash writes a bash completion function.
func generateBash(w io.Writer, cmds []commandDef) error {
	s := &scriptWriter{w: w}

	s.printf("# bash completion for mddocs\n\n")
	s.printf("_mddocs() {\n")
	s.printf("    local cur prev cmd\n")
	s.printf("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	s.printf("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	s.printf("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	s.printf("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	s.printf("        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
	s.printf("        return\n")
	s.printf("    fi\n\n")
	s.printf("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		s.printf("    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			s.printf("        case \"${prev}\" in\n")
			for _, f := range c.Flags {
				pattern := "--" + f.Long
				if f.Short != "" {
					pattern += "|-" + f.Short
				}
				switch f.Type {
				case flagEnum:
					s.printf("        %s) COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\")); return ;;\n",
						pattern, strings.Join(f.Values, " "))
				case flagFile:
					s.printf("        %s) COMPREPLY=($(compgen -f -- \"${cur}\")); return ;;\n", pattern)
				case flagDir:
					s.printf("        %s) COMPREPLY=($(compgen -d -- \"${cur}\")); return ;;\n", pattern)
				case flagString, flagInt:
					s.printf("        %s) return ;;\n", pattern)
				}
			}
			s.printf("        esac\n")
			s.printf("        if [[ \"${cur}\" == -* ]]; then\n")
			s.printf("            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(flagWords(c.Flags), " "))
			s.printf("            return\n")
			s.printf("        fi\n")
		}
		switch {
		case len(c.Args) > 0:
			s.printf("        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(c.Args, " "))
		case c.Name == "help":
			s.printf("        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
		case c.TakesFiles:
			s.printf("        COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
		case c.Name == "verify":
			s.printf("        COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
		}
		s.printf("        ;;\n")
	}

	s.printf("    esac\n")
	s.printf("}\n\n")
	s.printf("complete -o filenames -F _mddocs mddocs\n")

	return s.err
}

// zshEscape escapes text for a zsh _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// zshAction returns the _arguments action for a flag value.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		var parts []string
		for _, g := range globs(f.FileGlob) {
			parts = append(parts, "-g \""+g+"\"")
		}
		return fmt.Sprintf(":%s:_files %s", f.Long, strings.Join(parts, " "))
	case flagDir:
		return fmt.Sprintf(":%s:_files -/", f.Long)
	case flagString, flagInt:
		return fmt.Sprintf(":%s:", f.Long)
	default:
		return ""
	}
}

// generateZsh writes a zsh completion function.
func generateZsh(w io.Writer, cmds []commandDef) error {
	s := &scriptWriter{w: w}

	s.printf("#compdef mddocs\n\n")
	s.printf("_mddocs() {\n")
	s.printf("    local -a commands\n")
	s.printf("    commands=(\n")
	for _, c := range cmds {
		s.printf("        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	s.printf("    )\n\n")
	s.printf("    if (( CURRENT == 2 )); then\n")
	s.printf("        _describe 'command' commands\n")
	s.printf("        return\n")
	s.printf("    fi\n\n")
	s.printf("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		s.printf("    %s)\n", c.Name)
		s.printf("        _arguments \\\n")
		for _, f := range c.Flags {
			desc := zshEscape(f.Desc)
			action := zshAction(f)
			if f.Short != "" {
				s.printf("            '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, action)
			} else {
				s.printf("            '--%s[%s]%s' \\\n", f.Long, desc, action)
			}
		}
		switch {
		case len(c.Args) > 0:
			s.printf("            '1:shell:(%s)'\n", strings.Join(c.Args, " "))
		case c.Name == "help":
			s.printf("            '1:command:(%s)'\n", strings.Join(commandNames(cmds), " "))
		case c.TakesFiles:
			var parts []string
			for _, g := range globs(c.FilePattern) {
				parts = append(parts, "-g \""+g+"\"")
			}
			s.printf("            '*:input:_files %s'\n", strings.Join(parts, " "))
		case c.Name == "verify":
			s.printf("            '1:dir:_files -/'\n")
		default:
			s.printf("            '*: :'\n")
		}
		s.printf("        ;;\n")
	}

	s.printf("    esac\n")
	s.printf("}\n\n")
	s.printf("compdef _mddocs mddocs\n")

	return s.err
}

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(s)
}

// generateFish writes fish completion commands.
func generateFish(w io.Writer, cmds []commandDef) error {
	s := &scriptWriter{w: w}

	s.printf("# fish completion for mddocs\n\n")
	s.printf("function __fish_mddocs_needs_command\n")
	s.printf("    set -l cmd (commandline -opc)\n")
	s.printf("    test (count $cmd) -eq 1\n")
	s.printf("end\n\n")
	s.printf("function __fish_mddocs_using_command\n")
	s.printf("    set -l cmd (commandline -opc)\n")
	s.printf("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	s.printf("end\n\n")
	s.printf("complete -c mddocs -f\n")

	for _, c := range cmds {
		s.printf("complete -c mddocs -n '__fish_mddocs_needs_command' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_mddocs_using_command %s", c.Name)
		s.printf("\n# %s\n", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c mddocs -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagInt:
				line += " -x"
			}
			s.printf("%s -d '%s'\n", line, fishEscape(f.Desc))
		}
		switch {
		case len(c.Args) > 0:
			s.printf("complete -c mddocs -n '%s' -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.Name == "help":
			s.printf("complete -c mddocs -n '%s' -a '%s'\n", cond, strings.Join(commandNames(cmds), " "))
		case c.TakesFiles:
			s.printf("complete -c mddocs -n '%s' -F\n", cond)
		case c.Name == "verify":
			s.printf("complete -c mddocs -n '%s' -a '(__fish_complete_directories)'\n", cond)
		}
	}

	return s.err
}

// psQuote quotes text for a single-quoted PowerShell string.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// generatePowerShell writes a PowerShell argument completer.
func generatePowerShell(w io.Writer, cmds []commandDef) error {
	s := &scriptWriter{w: w}

	s.printf("# PowerShell completion for mddocs\n\n")
	s.printf("Register-ArgumentCompleter -Native -CommandName mddocs -ScriptBlock {\n")
	s.printf("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	s.printf("    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	s.printf("    $command = if ($elements.Count -gt 1) { $elements[1] } else { '' }\n\n")
	s.printf("    $commands = @{\n")
	for _, c := range cmds {
		s.printf("        %s = %s\n", psQuote(c.Name), psQuote(c.Desc))
	}
	s.printf("    }\n\n")
	s.printf("    if ($elements.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	s.printf("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | Sort-Object | ForEach-Object {\n")
	s.printf("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	s.printf("        }\n")
	s.printf("        return\n")
	s.printf("    }\n\n")
	s.printf("    $flags = switch ($command) {\n")
	for _, c := range cmds {
		var entries []string
		for _, f := range c.Flags {
			entries = append(entries, fmt.Sprintf("@(%s, %s)", psQuote("--"+f.Long), psQuote(f.Desc)))
			if f.Short != "" {
				entries = append(entries, fmt.Sprintf("@(%s, %s)", psQuote("-"+f.Short), psQuote(f.Desc)))
			}
		}
		for _, a := range c.Args {
			entries = append(entries, fmt.Sprintf("@(%s, %s)", psQuote(a), psQuote(a)))
		}
		if len(entries) == 0 {
			continue
		}
		s.printf("        %s { @(%s) }\n", psQuote(c.Name), strings.Join(entries, ", "))
	}
	s.printf("        default { @() }\n")
	s.printf("    }\n\n")
	s.printf("    $flags | Where-Object { $_[0] -like \"$wordToComplete*\" } | ForEach-Object {\n")
	s.printf("        [System.Management.Automation.CompletionResult]::new($_[0], $_[0], 'ParameterName', $_[1])\n")
	s.printf("    }\n")
	s.printf("}\n")

	return s.err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddocs completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(mddocs completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(mddocs completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    mddocs completion fish > ~/.config/fish/completions/mddocs.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    mddocs completion powershell | Out-String | Invoke-Expression")
}
