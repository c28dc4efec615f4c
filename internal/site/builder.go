// Package site builds the static site: it loads markdown posts, runs them
// through the typeset engine, renders HTML pages and writes the output
// tree with the stylesheet, attachments and the Atom feed.
package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	typeset "github.com/hellosansan/hellosansan.github.io"
	"github.com/hellosansan/hellosansan.github.io/internal/assets"
	"github.com/hellosansan/hellosansan.github.io/internal/config"
	"github.com/hellosansan/hellosansan.github.io/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Sentinel errors for build operations.
var (
	ErrNoContentDir  = errors.New("content directory not found")
	ErrSlugCollision = errors.New("two posts resolve to the same slug")
	ErrWritePage     = errors.New("failed to write page")
)

// Builder turns a content directory into a rendered site.
type Builder struct {
	cfg       *config.Config
	resolver  *assets.AssetResolver
	renderer  *Renderer
	log       *slog.Logger
	themePath string
	drafts    bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the build logger. The default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// WithThemePath overrides embedded templates and stylesheet with files
// from a theme directory.
func WithThemePath(path string) Option {
	return func(b *Builder) { b.themePath = path }
}

// WithDrafts includes draft posts in the build.
func WithDrafts(include bool) Option {
	return func(b *Builder) { b.drafts = include }
}

// NewBuilder creates a Builder for the given configuration.
func NewBuilder(cfg *config.Config, opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg:      cfg,
		renderer: NewRenderer(cfg.Highlight.Style),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	resolver, err := assets.NewAssetResolver(b.themePath)
	if err != nil {
		return nil, err
	}
	b.resolver = resolver

	return b, nil
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	Posts     int
	Drafts    int
	OutputDir string
	Duration  time.Duration
}

// Build renders the whole site into the configured output directory.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	paths, err := discoverPosts(b.cfg.Content.Dir)
	if err != nil {
		return nil, err
	}
	b.log.Info("discovered posts", "count", len(paths), "dir", b.cfg.Content.Dir)

	loaded, err := b.loadAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	posts := make([]*Post, 0, len(loaded))
	drafts := 0
	for _, post := range loaded {
		if post.Draft {
			drafts++
			if !b.drafts {
				continue
			}
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})

	if err := checkSlugs(posts); err != nil {
		return nil, err
	}

	if err := b.writeSite(posts); err != nil {
		return nil, err
	}

	result := &BuildResult{
		Posts:     len(posts),
		Drafts:    drafts,
		OutputDir: b.cfg.Output.Dir,
		Duration:  time.Since(start),
	}
	b.log.Info("build complete",
		"posts", result.Posts,
		"drafts", result.Drafts,
		"output", result.OutputDir,
		"duration", result.Duration.Round(time.Millisecond))
	return result, nil
}

// loadAll loads and renders posts concurrently. Each worker runs its own
// typeset pass, so post transforms never share mutable state.
func (b *Builder) loadAll(ctx context.Context, paths []string) ([]*Post, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	concurrency := resolveWorkers(b.cfg.Build.Workers)
	if concurrency > len(paths) {
		concurrency = len(paths)
	}

	posts := make([]*Post, len(paths))
	loadErrs := make([]error, len(paths))
	var wg sync.WaitGroup
	jobs := make(chan int, len(paths))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					loadErrs[idx] = ctx.Err()
					continue
				}
				posts[idx], loadErrs[idx] = b.loadOne(paths[idx])
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(loadErrs...); err != nil {
		return nil, err
	}
	return posts, nil
}

// loadOne reads a post, runs the typeset transform and renders its HTML.
func (b *Builder) loadOne(path string) (*Post, error) {
	post, err := LoadPost(path, b.cfg.Site.DateFormat)
	if err != nil {
		return nil, err
	}

	transformed, err := typeset.Process(post.Markdown)
	if err != nil {
		return nil, fmt.Errorf("typesetting %s: %w", path, err)
	}

	content, err := b.renderer.Render(transformed)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}
	post.Content = content

	if post.Summary == "" {
		post.Summary = ExtractSummary(string(content))
	}
	b.log.Debug("loaded post", "path", path, "slug", post.Slug)
	return post, nil
}

// writeSite renders templates and writes the full output tree.
func (b *Builder) writeSite(posts []*Post) error {
	pageTmpl, indexTmpl, err := b.loadTemplates()
	if err != nil {
		return err
	}

	outDir := b.cfg.Output.Dir
	if err := fileutil.EnsureDir(outDir); err != nil {
		return err
	}

	site := siteData{
		Title:       b.cfg.Site.Title,
		Author:      b.cfg.Site.Author,
		Description: b.cfg.Site.Description,
		BaseURL:     b.cfg.Site.BaseURL,
		Language:    b.cfg.Site.Language,
	}
	feedPath := ""
	if b.cfg.Feed.Enabled {
		feedPath = FeedPath
	}

	for _, post := range posts {
		if err := b.writePage(pageTmpl, filepath.Join(outDir, post.Slug, "index.html"), pageData{
			Site:     site,
			Post:     post,
			FeedPath: feedPath,
		}); err != nil {
			return err
		}
	}

	if err := b.writePage(indexTmpl, filepath.Join(outDir, "index.html"), indexData{
		Site:     site,
		Posts:    posts,
		FeedPath: feedPath,
	}); err != nil {
		return err
	}

	css, err := b.resolver.LoadStyle("site")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "site.css"), []byte(css), filePermissions); err != nil {
		return fmt.Errorf("%w: site.css: %v", ErrWritePage, err)
	}

	if b.cfg.Feed.Enabled {
		atom, err := buildFeed(b.cfg, posts, time.Now())
		if err != nil {
			return err
		}
		atomFile := strings.TrimPrefix(FeedPath, "/")
		if err := os.WriteFile(filepath.Join(outDir, atomFile), []byte(atom), filePermissions); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWritePage, atomFile, err)
		}
	}

	if err := fileutil.CopyDir(b.cfg.Content.AttachmentsDir, filepath.Join(outDir, "attachments")); err != nil {
		return fmt.Errorf("copying attachments: %w", err)
	}
	if err := fileutil.CopyDir(b.cfg.Content.StaticDir, outDir); err != nil {
		return fmt.Errorf("copying static files: %w", err)
	}

	return nil
}

// loadTemplates parses the page and index templates from the resolver.
func (b *Builder) loadTemplates() (*template.Template, *template.Template, error) {
	pageSrc, err := b.resolver.LoadTemplate("page")
	if err != nil {
		return nil, nil, err
	}
	pageTmpl, err := template.New("page").Parse(pageSrc)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing page template: %w", err)
	}

	indexSrc, err := b.resolver.LoadTemplate("index")
	if err != nil {
		return nil, nil, err
	}
	indexTmpl, err := template.New("index").Parse(indexSrc)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing index template: %w", err)
	}

	return pageTmpl, indexTmpl, nil
}

// writePage executes a template into a file, creating parent directories.
func (b *Builder) writePage(tmpl *template.Template, path string, data any) error {
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path) // #nosec G304 -- path derived from config and slugs
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePage, path, err)
	}
	if err := tmpl.Execute(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWritePage, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePage, path, err)
	}
	return nil
}

// siteData is the template view of the site configuration.
type siteData struct {
	Title       string
	Author      string
	Description string
	BaseURL     string
	Language    string
}

type pageData struct {
	Site     siteData
	Post     *Post
	FeedPath string
}

type indexData struct {
	Site     siteData
	Posts    []*Post
	FeedPath string
}

// discoverPosts finds all markdown files under the content directory.
func discoverPosts(contentDir string) ([]string, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoContentDir, contentDir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoContentDir, contentDir)
	}

	var paths []string
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// checkSlugs rejects builds where two posts would overwrite each other.
func checkSlugs(posts []*Post) error {
	seen := make(map[string]string, len(posts))
	for _, post := range posts {
		if prev, ok := seen[post.Slug]; ok {
			return fmt.Errorf("%w: %q used by %s and %s", ErrSlugCollision, post.Slug, prev, post.SourcePath)
		}
		seen[post.Slug] = post.SourcePath
	}
	return nil
}

// resolveWorkers determines the build concurrency.
// Priority: explicit config > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
