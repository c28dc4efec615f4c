package site

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/hellosansan/hellosansan.github.io/internal/dateutil"
	"github.com/hellosansan/hellosansan.github.io/internal/yamlutil"
)

// Sentinel errors for post loading.
var (
	ErrReadPost        = errors.New("failed to read post")
	ErrPostFrontMatter = errors.New("invalid post front matter")
	ErrEmptySlug       = errors.New("cannot derive slug for post")
)

// frontMatter is the YAML block at the top of a post file.
type frontMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Slug    string   `yaml:"slug"`
	Draft   bool     `yaml:"draft"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// Post is a single article loaded from a markdown file.
type Post struct {
	Title       string
	Slug        string
	Date        time.Time
	DateDisplay string
	Draft       bool
	Summary     string
	Tags        []string
	SourcePath  string

	// URL is the site-relative path of the rendered page, e.g. "/my-post/".
	URL string

	// Markdown is the post body without the front matter block.
	Markdown []byte

	// Content is the rendered HTML body, filled in during the build.
	Content template.HTML
}

// LoadPost reads a post file and parses its front matter.
// Front matter is optional: a file without one gets its title from the
// filename and its date from the file modification time.
// displayFormat is the dateutil display format for DateDisplay.
func LoadPost(path, displayFormat string) (*Post, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPost, err)
	}

	var fm frontMatter
	body := data
	meta, rest, err := yamlutil.SplitFrontMatter(data)
	switch {
	case err == nil:
		if err := yamlutil.Unmarshal(meta, &fm); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPostFrontMatter, path, err)
		}
		body = rest
	case errors.Is(err, yamlutil.ErrNoFrontMatter):
		// fall through with defaults
	default:
		return nil, fmt.Errorf("%w: %s: %v", ErrPostFrontMatter, path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if fm.Title == "" {
		fm.Title = base
	}

	date, err := resolvePostDate(fm.Date, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPostFrontMatter, path, err)
	}

	postSlug, err := resolveSlug(fm.Slug, base, fm.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	display, err := dateutil.FormatDisplay(date, displayFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPostFrontMatter, path, err)
	}

	return &Post{
		Title:       fm.Title,
		Slug:        postSlug,
		Date:        date,
		DateDisplay: display,
		Draft:       fm.Draft,
		Summary:     fm.Summary,
		Tags:        fm.Tags,
		SourcePath:  path,
		URL:         "/" + postSlug + "/",
		Markdown:    body,
	}, nil
}

// resolvePostDate parses the front matter date, falling back to the file
// modification time when the front matter has none.
func resolvePostDate(raw, path string) (time.Time, error) {
	if raw != "" {
		return dateutil.ParsePostDate(raw)
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// resolveSlug picks the URL slug: explicit front matter value, then the
// filename, then the title. CJK-only names transliterate via the slug
// package; a name that produces nothing falls through to the next source.
func resolveSlug(explicit, filename, title string) (string, error) {
	for _, candidate := range []string{explicit, filename, title} {
		if candidate == "" {
			continue
		}
		if s := slug.Make(candidate); s != "" {
			return s, nil
		}
	}
	return "", ErrEmptySlug
}
