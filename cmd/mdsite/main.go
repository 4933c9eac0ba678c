package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdsite/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommands recognized by runMain.
var commands = []string{"build", "convert", "version", "help"}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// args[0] is the program name.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case cmd == "-h" || cmd == "--help":
		return runHelp(nil, env)
	case cmd == "--version":
		cmd = "version"
	case !isCommand(cmd):
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd {
	case "help":
		return runHelp(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
		return ExitSuccess
	case "build":
		var flags *buildFlags
		flags, rest, err = parseBuildFlags(rest, env.Stdout)
		if err == nil {
			err = runBuild(ctx, rest, flags, env)
		}
	case "convert":
		var flags *convertFlags
		flags, rest, err = parseConvertFlags(rest, env.Stdout)
		if err == nil {
			err = runConvert(ctx, rest, flags, env)
		}
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// newLogger creates the stderr logger for a command's verbosity flags.
func newLogger(f commonFlags, env *Environment) *logger.Logger {
	switch {
	case f.quiet:
		return logger.NewWithLevel(env.Stderr, log.ErrorLevel)
	case f.verbose:
		return logger.NewWithLevel(env.Stderr, log.DebugLevel)
	default:
		return logger.New(env.Stderr)
	}
}
