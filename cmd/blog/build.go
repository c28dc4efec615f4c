package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/hellosansan/hellosansan.github.io/internal/config"
	"github.com/hellosansan/hellosansan.github.io/internal/site"
)

// runBuild executes the build command.
func runBuild(ctx context.Context, args []string) error {
	flags, err := parseBuildFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	builder, err := site.NewBuilder(cfg,
		site.WithLogger(newLogger(flags)),
		site.WithThemePath(flags.theme),
		site.WithDrafts(flags.drafts),
	)
	if err != nil {
		return err
	}

	_, err = builder.Build(ctx)
	return err
}

// loadConfig loads the config named by the flags and applies flag overrides.
// The default config name is optional: when no blog.yaml exists, built-in
// defaults are used. An explicitly named config must exist.
func loadConfig(flags *buildFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		if flags.config == configFlagDefault && errors.Is(err, config.ErrConfigNotFound) {
			cfg = config.DefaultConfig()
		} else {
			return nil, err
		}
	}

	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	return cfg, nil
}

// newLogger builds the slog logger for the configured verbosity.
func newLogger(flags *buildFlags) *slog.Logger {
	level := slog.LevelInfo
	if flags.quiet {
		level = slog.LevelError
	}
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
