package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/hellosansan/hellosansan.github.io/internal/fileutil"
	"github.com/hellosansan/hellosansan.github.io/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength       = 200  // Site title
	MaxAuthorLength      = 100  // Author name
	MaxURLLength         = 2048 // Browser limit
	MaxDescriptionLength = 500  // Site description / feed subtitle
	MaxDateFormatLength  = 50   // Display date format string
	MaxWorkers           = 64   // Parallel build workers
)

// Config holds all configuration for building the site.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Output    OutputConfig    `yaml:"output"`
	Highlight HighlightConfig `yaml:"highlight"`
	Feed      FeedConfig      `yaml:"feed"`
	Build     BuildConfig     `yaml:"build"`
}

// SiteConfig describes the site itself.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	BaseURL     string `yaml:"baseURL"`     // Absolute URL, used in the feed and canonical links
	Description string `yaml:"description"` // Shown on the index page and in the feed
	Language    string `yaml:"language"`    // BCP 47 tag (default: "zh-CN")
	DateFormat  string `yaml:"dateFormat"`  // Display format, e.g. "YYYY[年]M[月]D[日]"
}

// ContentConfig defines where source material lives.
type ContentConfig struct {
	Dir            string `yaml:"dir"`            // Markdown posts (default: "content")
	AttachmentsDir string `yaml:"attachmentsDir"` // Images and files referenced by posts (default: "attachments")
	StaticDir      string `yaml:"staticDir"`      // Copied verbatim into the output root (default: "static")
}

// OutputConfig defines where the built site goes.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default: "public"
}

// HighlightConfig defines code highlighting options.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style name (default: "github")
}

// FeedConfig defines Atom feed options.
type FeedConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"` // Max entries, 0 = all
}

// BuildConfig defines build execution options.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU
}

// Validate checks field lengths and option values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.author", c.Site.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.baseURL", c.Site.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.description", c.Site.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.dateFormat", c.Site.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}
	if c.Site.BaseURL != "" && !strings.HasPrefix(c.Site.BaseURL, "http://") && !strings.HasPrefix(c.Site.BaseURL, "https://") {
		return fmt.Errorf("site.baseURL: must start with http:// or https://, got %q", c.Site.BaseURL)
	}

	if c.Highlight.Style != "" && styles.Get(c.Highlight.Style) == styles.Fallback && c.Highlight.Style != styles.Fallback.Name {
		return fmt.Errorf("highlight.style: unknown style %q", c.Highlight.Style)
	}

	if c.Feed.Limit < 0 {
		return fmt.Errorf("feed.limit: must be >= 0, got %d", c.Feed.Limit)
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("build.workers: must be between 0 and %d, got %d", MaxWorkers, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:      "Blog",
			Language:   "zh-CN",
			DateFormat: "YYYY-MM-DD",
		},
		Content: ContentConfig{
			Dir:            "content",
			AttachmentsDir: "attachments",
			StaticDir:      "static",
		},
		Output:    OutputConfig{Dir: "public"},
		Highlight: HighlightConfig{Style: "github"},
		Feed:      FeedConfig{Enabled: true},
	}
}

// applyDefaults fills zero-valued fields with their defaults.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Site.Title == "" {
		c.Site.Title = def.Site.Title
	}
	if c.Site.Language == "" {
		c.Site.Language = def.Site.Language
	}
	if c.Site.DateFormat == "" {
		c.Site.DateFormat = def.Site.DateFormat
	}
	if c.Content.Dir == "" {
		c.Content.Dir = def.Content.Dir
	}
	if c.Content.AttachmentsDir == "" {
		c.Content.AttachmentsDir = def.Content.AttachmentsDir
	}
	if c.Content.StaticDir == "" {
		c.Content.StaticDir = def.Content.StaticDir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Highlight.Style == "" {
		c.Highlight.Style = def.Highlight.Style
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "blog", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
