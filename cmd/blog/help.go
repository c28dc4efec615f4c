package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blog <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site into the output directory")
	fmt.Fprintln(w, "  serve      Build and serve the site locally")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blog help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blog build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site into the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path (default: blog)")
	fmt.Fprintln(w, "  -o, --output <dir>     Output directory (overrides config)")
	fmt.Fprintln(w, "      --theme <dir>      Theme directory overriding embedded assets")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts           Include draft posts")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-post detail")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blog serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site and serve it over HTTP for local preview.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <addr>      Listen address (default: localhost:8080)")
	fmt.Fprintln(w, "      --watch            Rebuild when source files change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build flags (see 'blog help build') also apply.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, w io.Writer) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(w)
	case "serve":
		printServeUsage(w)
	default:
		printUsage(w)
	}
}
