package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	deps := DefaultDeps()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(os.Args, "--verbose") || slices.Contains(os.Args, "-v") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, deps)
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and maps its error to an exit code.
func runMain(ctx context.Context, args []string, deps *Dependencies) int {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case cmd == "convert":
	case cmd == "options":
		return report(runOptions(rest, deps), deps)
	case cmd == "version", cmd == "--version":
		fmt.Fprintf(deps.Stdout, "go-md2html %s\n", Version)
		return ExitSuccess
	case cmd == "help", cmd == "--help", cmd == "-h":
		runHelp(rest, deps)
		return ExitSuccess
	case looksLikeInput(cmd):
		// "md2html doc.md" is shorthand for "md2html convert doc.md".
		rest = args[1:]
	default:
		fmt.Fprintf(deps.Stderr, "unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}

	flags, positional, err := parseConvertFlags(rest)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return ExitUsage
	}
	deps.Logger = newLogger(deps, flags.common)
	return report(runConvert(ctx, positional, flags, deps), deps)
}

// report prints err and its hint, if any, and returns its exit code.
func report(err error, deps *Dependencies) int {
	if err != nil {
		fmt.Fprintf(deps.Stderr, "%v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// looksLikeInput reports whether a first argument starts a convert command
// line (a flag, "-" for stdin, or a path) rather than naming a command.
func looksLikeInput(arg string) bool {
	return strings.HasPrefix(arg, "-") || fileutil.IsMarkdown(arg) || fileutil.IsFilePath(arg)
}

// newLogger returns the diagnostics logger for the verbosity flags.
func newLogger(deps *Dependencies, f commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))
}
