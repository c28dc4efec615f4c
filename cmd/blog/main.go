package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if len(args) == 0 {
		printUsage(os.Stderr)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, rest := args[0], args[1:]
	switch command {
	case "build":
		if err := runBuild(ctx, rest); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case "serve":
		if err := runServe(ctx, rest); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case "version":
		fmt.Println("blog " + Version)
	case "help", "-h", "--help":
		runHelp(rest, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		printUsage(os.Stderr)
		return 1
	}
	return 0
}
