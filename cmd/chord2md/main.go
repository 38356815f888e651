// Command chord2md converts plain-text chord charts, with chords on
// their own line above the lyrics, into Markdown with inline bracketed
// chords, plus HTML and PDF renderings of the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	chord2md "github.com/alnah/go-chord2md"
	"github.com/alnah/go-chord2md/internal/hints"
)

// Version is stamped by the release build via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches the subcommand and translates failures to exit codes.
func run(args []string, env *Environment) int {
	// A .env file supplies CHORD2MD_* variables during development;
	// absence is not an error.
	_ = godotenv.Load()
	warnUnknownEnvVars(env.Stderr)

	cmd, rest := splitCommand(args)
	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "chord2md %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env.Stdout)
		return ExitSuccess
	case "completion":
		if err := runCompletion(rest, env.Stdout); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "doctor":
		return runDoctor(rest, env)
	default:
		return runConvertCommand(rest, env)
	}
}

// splitCommand peels off a leading subcommand name; anything else is
// treated as arguments to convert, the default command.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "convert", nil
	}
	switch args[0] {
	case "convert", "version", "help", "completion", "doctor":
		return args[0], args[1:]
	case "--help", "-h":
		return "help", nil
	case "--version":
		return "version", nil
	default:
		return "convert", args
	}
}

// runConvertCommand parses flags, installs signal handling, and runs
// the conversion.
func runConvertCommand(args []string, env *Environment) int {
	flags, inputs, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	setMaxProcs(flags.common.verbose, env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, inputs, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs aligns GOMAXPROCS with container CPU quotas so the pool
// does not oversubscribe a throttled runner. The adjustment is silent
// unless verbose mode asks for it.
func setMaxProcs(verbose bool, stderr io.Writer) {
	logger := func(string, ...any) {}
	if verbose {
		logger = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}

// hintFor appends remediation hints for failure classes detected at the
// top level. Path-specific hints attach where the error is created.
func hintFor(err error) string {
	switch {
	case errors.Is(err, chord2md.ErrBrowserConnect):
		return hints.ForBrowserLaunch()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}
