package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hellosansan/hellosansan.github.io/internal/config"
	"github.com/hellosansan/hellosansan.github.io/internal/fileutil"
	"github.com/hellosansan/hellosansan.github.io/internal/site"
)

// rebuildDebounce coalesces bursts of file events into one rebuild.
const rebuildDebounce = 250 * time.Millisecond

// runServe executes the serve command: build once, then serve the output
// directory, optionally rebuilding on source changes.
func runServe(ctx context.Context, args []string) error {
	flags, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(&flags.build)
	if err != nil {
		return err
	}
	log := newLogger(&flags.build)

	builder, err := site.NewBuilder(cfg,
		site.WithLogger(log),
		site.WithThemePath(flags.build.theme),
		site.WithDrafts(flags.build.drafts),
	)
	if err != nil {
		return err
	}
	if _, err := builder.Build(ctx); err != nil {
		return err
	}

	if flags.watch {
		watcher, err := newSourceWatcher(ctx, cfg, builder, log)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()
	}

	return serveOutput(ctx, flags.addr, cfg.Output.Dir, log)
}

// serveOutput serves the built site until the context is cancelled.
func serveOutput(ctx context.Context, addr, dir string, log *slog.Logger) error {
	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Handle("/*", http.FileServer(http.Dir(dir)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("serving site", "addr", "http://"+addr, "dir", dir)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Microsecond))
		})
	}
}

// newSourceWatcher watches content, attachments and static directories and
// rebuilds after changes settle.
func newSourceWatcher(ctx context.Context, cfg *config.Config, builder *site.Builder, log *slog.Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{cfg.Content.Dir, cfg.Content.AttachmentsDir, cfg.Content.StaticDir} {
		if err := watchTree(watcher, dir); err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	go func() {
		var timer *time.Timer
		rebuild := func() {
			if _, err := builder.Build(ctx); err != nil {
				log.Error("rebuild failed", "error", err)
			}
		}
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// New directories must be watched too.
				if event.Has(fsnotify.Create) && fileutil.DirExists(event.Name) {
					_ = watcher.Add(event.Name)
				}
				log.Debug("source changed", "path", event.Name, "op", event.Op.String())
				if timer == nil {
					timer = time.AfterFunc(rebuildDebounce, rebuild)
				} else {
					timer.Reset(rebuildDebounce)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("watch error", "error", err)
			}
		}
	}()

	return watcher, nil
}

// watchTree adds dir and all its subdirectories to the watcher.
// A missing dir is skipped.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	if !fileutil.DirExists(dir) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
