package main

import (
	flag "github.com/spf13/pflag"
)

// buildFlags holds flags for the build command.
type buildFlags struct {
	config  string
	output  string
	theme   string
	workers int
	drafts  bool
	quiet   bool
	verbose bool
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	build buildFlags
	addr  string
	watch bool
}

// configFlagDefault is the config name searched when --config is not given.
const configFlagDefault = "blog"

func newBuildFlagSet(name string, flags *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVarP(&flags.config, "config", "c", configFlagDefault, "config file name or path")
	fs.StringVarP(&flags.output, "output", "o", "", "output directory (overrides config)")
	fs.StringVar(&flags.theme, "theme", "", "theme directory overriding embedded assets")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&flags.drafts, "drafts", false, "include draft posts")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "show per-post detail")
	return fs
}

func parseBuildFlags(args []string) (*buildFlags, error) {
	flags := &buildFlags{}
	fs := newBuildFlagSet("build", flags)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

func parseServeFlags(args []string) (*serveFlags, error) {
	flags := &serveFlags{}
	fs := newBuildFlagSet("serve", &flags.build)
	fs.StringVarP(&flags.addr, "addr", "a", "localhost:8080", "listen address")
	fs.BoolVar(&flags.watch, "watch", false, "rebuild when source files change")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}
