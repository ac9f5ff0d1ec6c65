// Package blog assembles the static blog content pipeline: it reads post
// files from a content directory, builds the canonical post index, and
// exposes the queries and renderer props a static site build consumes.
package blog

import (
	"context"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/internal/feed"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/urlresolver"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Post exports the canonical post record consumed by page renderers.
type Post = interfaces.Post

// PostFeed exports the query contract over the built index.
type PostFeed = interfaces.PostFeed

// Feed exports the concrete immutable index.
type Feed = feed.Index

// BuildReport exports the per-build outcome summary.
type BuildReport = feed.BuildReport

// Props exports the JSON-serializable renderer props object.
type Props = feed.Props

// PostProps exports the per-post props projection.
type PostProps = feed.PostProps

// PostParseError exports the per-post failure record.
type PostParseError = feed.PostParseError

// DuplicateSlugError exports the fatal slug conflict error.
type DuplicateSlugError = feed.DuplicateSlugError

// ErrDuplicateSlug exports the sentinel matched by DuplicateSlugError.
var ErrDuplicateSlug = feed.ErrDuplicateSlug

// ErrDateInvalid exports the sentinel for unparseable post dates.
var ErrDateInvalid = feed.ErrDateInvalid

// Option overrides a pipeline dependency.
type Option func(*Blog)

// WithLoggerProvider injects a logging provider instead of the configured one.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(b *Blog) {
		b.provider = provider
	}
}

// WithSource replaces the filesystem post source, e.g. with embedded content.
func WithSource(source interfaces.PostSource) Option {
	return func(b *Blog) {
		b.source = source
	}
}

// WithParser replaces the Markdown parser used for renderer props.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(b *Blog) {
		b.parser = parser
	}
}

// WithURLResolver replaces the permalink resolver.
func WithURLResolver(resolver interfaces.PostURLResolver) Option {
	return func(b *Blog) {
		b.resolver = resolver
	}
}

// Blog is the top level build-time pipeline facade. The post index it
// produces is an explicit value handed to callers, never module state, so
// the pipeline stays testable in isolation.
type Blog struct {
	cfg      Config
	provider interfaces.LoggerProvider
	source   interfaces.PostSource
	parser   interfaces.MarkdownParser
	resolver interfaces.PostURLResolver
}

// New constructs a blog pipeline using the provided configuration and
// optional dependency overrides.
func New(cfg Config, opts ...Option) (*Blog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Blog{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}

	if b.provider == nil && cfg.Features.Logger {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		b.provider = provider
	}

	if b.source == nil {
		source, err := markdown.NewSource(markdown.SourceConfig{
			BasePath:  cfg.Content.Dir,
			Pattern:   cfg.Content.Pattern,
			Recursive: cfg.Content.Recursive,
		}, logging.SourceLogger(b.provider))
		if err != nil {
			return nil, err
		}
		b.source = source
	}

	if b.parser == nil && cfg.Features.RenderHTML {
		b.parser = markdown.NewGoldmarkParser(parseOptions(cfg.Markdown.Parser))
	}

	if b.resolver == nil && cfg.Routes.RouteConfig != nil {
		manager := urlkit.NewRouteManager(cfg.Routes.RouteConfig)
		b.resolver = urlresolver.New(urlresolver.Options{
			Manager:   manager,
			Group:     cfg.Routes.URLKit.Group,
			Route:     cfg.Routes.URLKit.Route,
			SlugParam: cfg.Routes.URLKit.SlugParam,
		})
	}

	return b, nil
}

// Build loads every post document and produces the canonical index plus a
// report of skipped posts. The index is immutable; rebuilding after a
// content change means calling Build again.
func (b *Blog) Build(ctx context.Context) (*Feed, *BuildReport, error) {
	docs, err := b.source.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	indexer := feed.NewIndexer(feed.Options{
		Strict:        b.cfg.Index.Strict,
		IncludeDrafts: b.cfg.Index.IncludeDrafts,
	}, logging.FeedLogger(b.provider))

	return indexer.Build(ctx, docs)
}

// Props projects the built index into the renderer props object, rendering
// bodies to HTML and resolving permalinks when configured.
func (b *Blog) Props(ctx context.Context, index *Feed) (*Props, error) {
	limit := b.cfg.Index.DefaultLimit
	if limit == 0 {
		limit = -1
	}

	return feed.BuildProps(ctx, index, feed.PropsOptions{
		Limit:        limit,
		Parser:       b.parser,
		ParseOptions: parseOptions(b.cfg.Markdown.Parser),
		Resolver:     b.resolver,
	})
}

// Load is a convenience one-shot: construct the pipeline, build the index,
// and return it.
func Load(ctx context.Context, cfg Config, opts ...Option) (*Feed, error) {
	b, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	index, _, err := b.Build(ctx)
	return index, err
}

func parseOptions(cfg MarkdownParserConfig) interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: cfg.Extensions,
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}
