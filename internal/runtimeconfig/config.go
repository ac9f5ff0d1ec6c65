package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrContentDirRequired indicates the content directory was left empty.
var ErrContentDirRequired = errors.New("blog config: content directory is required")

// ErrLoggingProviderRequired indicates logging was enabled without a provider.
var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")
var ErrRoutesGroupRequired = errors.New("blog config: routes group is required when route config is set")
var ErrDefaultLimitInvalid = errors.New("blog config: default limit must be zero or positive")

// Config aggregates the settings for a single blog build. Fields use simple
// types so host applications can unmarshal them from any configuration
// source.
type Config struct {
	Enabled  bool
	Content  ContentConfig
	Markdown MarkdownConfig
	Index    IndexConfig
	Routes   RoutesConfig
	Logging  LoggingConfig
	Features Features
}

// ContentConfig captures where and how post files are discovered.
type ContentConfig struct {
	// Dir is the root directory where post files live.
	Dir string
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// MarkdownConfig captures parser behaviour for rendering post bodies.
type MarkdownConfig struct {
	Parser MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// IndexConfig controls indexing policy.
type IndexConfig struct {
	// Strict aborts the build on the first malformed post instead of
	// skipping it and reporting.
	Strict bool
	// DefaultLimit bounds SortedPosts when the facade is asked for the
	// default page of posts. Zero means no bound.
	DefaultLimit int
	// IncludeDrafts keeps posts marked draft in the index.
	IncludeDrafts bool
}

// RoutesConfig captures routing configuration for post permalink resolution.
type RoutesConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based resolver.
type URLKitResolverConfig struct {
	Group     string
	Route     string
	SlugParam string
}

// Features toggles module functionality.
type Features struct {
	// RenderHTML converts post bodies to HTML when building renderer props.
	RenderHTML bool
	// Logger enables the configured logging provider.
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a conventional content layout.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Content: ContentConfig{
			Dir:       "content/posts",
			Pattern:   "*.md",
			Recursive: true,
		},
		Markdown: MarkdownConfig{
			Parser: MarkdownParserConfig{},
		},
		Index: IndexConfig{
			Strict:       false,
			DefaultLimit: 0,
		},
		Routes: RoutesConfig{
			URLKit: URLKitResolverConfig{
				Route:     "post",
				SlugParam: "slug",
			},
		},
		Features: Features{
			RenderHTML: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Index.DefaultLimit < 0 {
		return ErrDefaultLimitInvalid
	}
	if cfg.Routes.RouteConfig != nil {
		if strings.TrimSpace(cfg.Routes.URLKit.Group) == "" {
			return ErrRoutesGroupRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
