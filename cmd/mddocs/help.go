package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddocs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build HTML pages from markdown (alias: convert)")
	fmt.Fprintln(w, "  verify      Check built pages for a consistent sidebar")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  doctor      Check system configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running 'mddocs <input>' is the same as 'mddocs build <input>'.")
	fmt.Fprintln(w, "Run 'mddocs help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddocs build <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build one HTML page per markdown file, each with a heading sidebar.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or .html file for a single input")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "  -e, --engine <s>          Engine: builtin, goldmark")
	fmt.Fprintln(w, "      --highlight <s>       Chroma style for code blocks (goldmark)")
	fmt.Fprintln(w, "      --close-fences        Close a code fence left open at end of file")
	fmt.Fprintln(w, "      --keep-md-links       Leave links to .md files unchanged")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --title-prefix <s>    Page titles become \"PREFIX - Title\"")
	fmt.Fprintln(w, "      --lang <s>            html lang attribute (default en)")
	fmt.Fprintln(w, "      --sidebar-title <s>   Label above the navigation")
	fmt.Fprintln(w, "      --drafts              Include pages marked draft")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Index:")
	fmt.Fprintln(w, "      --index               Generate index.html listing every page")
	fmt.Fprintln(w, "      --no-index            Do not generate index.html")
	fmt.Fprintln(w, "      --index-title <s>     Index heading")
	fmt.Fprintln(w, "      --index-updated <s>   Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, full")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Updated] YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or inline CSS")
	fmt.Fprintln(w, "      --template <s>        Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printVerifyUsage prints usage for the verify command.
func printVerifyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddocs verify [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that each built page lists its headings in the sidebar.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir      Built site directory (default: output.defaultDir from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -b, --browser             Also run the page script in headless Chrome")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel browsers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-page browser timeout (e.g. 30s, 1m)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed output")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddocs config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration build would use, after environment overrides.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --paths               List where a config name is searched")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddocs doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check system configuration for verify --browser and list styles.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output in JSON format")
	fmt.Fprintln(w, "      --styles              List page and code highlight styles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  Ready (warnings allowed)")
	fmt.Fprintln(w, "  1  Errors found")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build", "convert":
		printBuildUsage(env.Stdout)
	case "verify":
		printVerifyUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mddocs version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mddocs help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
