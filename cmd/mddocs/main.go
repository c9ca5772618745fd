package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the names runMain dispatches on.
var commands = map[string]bool{
	"build":      true,
	"convert":    true,
	"verify":     true,
	"config":     true,
	"doctor":     true,
	"completion": true,
	"version":    true,
	"help":       true,
}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// A first argument that is not a command is treated as the input of build,
// so "mddocs docs/" works like "mddocs build docs/".
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if strings.HasPrefix(cmd, "-") || looksLikeInput(cmd) {
			cmd, rest = "build", args[1:]
		} else {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "build", "convert":
		err = runBuild(ctx, rest, env)
	case "verify":
		err = runVerify(ctx, rest, env)
	case "config":
		err = runConfig(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mddocs %s\n", Version)
	case "help":
		runHelp(rest, env)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	return commands[arg]
}

// looksLikeInput reports whether arg is plausibly a Markdown file or a
// directory rather than a mistyped command.
func looksLikeInput(arg string) bool {
	if strings.ContainsAny(arg, "/\\.") {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}

// setMaxProcs configures GOMAXPROCS for the container quota, logging only
// when verbose. The error is ignored: maxprocs.Set only fails on an invalid
// GOMAXPROCS value, in which case the runtime default applies.
func setMaxProcs(env *Environment, verbose bool) {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
