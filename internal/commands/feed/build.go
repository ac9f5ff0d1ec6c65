// Package feedcmd exposes the index build step as a validated command so
// hosts can run it through a go-command dispatcher.
package feedcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/feed"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const buildIndexMessageType = "blog.feed.build"

// BuildIndexCommand requests a full rebuild of the post index from a content
// directory.
type BuildIndexCommand struct {
	ContentDir string `json:"content_dir"`
	Pattern    string `json:"pattern,omitempty"`
	Recursive  bool   `json:"recursive,omitempty"`
	Strict     bool   `json:"strict,omitempty"`
}

// Type implements command.Message.
func (BuildIndexCommand) Type() string { return buildIndexMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m BuildIndexCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ContentDir) == "" {
		errs["content_dir"] = validation.NewError("blog.feed.build.content_dir_required", "content_dir is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IndexSink receives the freshly built index and its report.
type IndexSink func(*feed.Index, *feed.BuildReport)

// BuildIndexHandler rebuilds the post index via the shared command handler
// foundation.
type BuildIndexHandler struct {
	inner *commands.Handler[BuildIndexCommand]
}

// NewBuildIndexHandler constructs a handler that reads the content directory,
// builds the index, and hands the result to sink.
func NewBuildIndexHandler(sink IndexSink, logger interfaces.Logger, opts ...commands.HandlerOption[BuildIndexCommand]) *BuildIndexHandler {
	exec := func(ctx context.Context, msg BuildIndexCommand) error {
		source, err := markdown.NewSource(markdown.SourceConfig{
			BasePath:  msg.ContentDir,
			Pattern:   msg.Pattern,
			Recursive: msg.Recursive,
		}, logger)
		if err != nil {
			return err
		}

		docs, err := source.LoadAll(ctx)
		if err != nil {
			return err
		}

		indexer := feed.NewIndexer(feed.Options{Strict: msg.Strict}, logger)
		index, report, err := indexer.Build(ctx, docs)
		if err != nil {
			return err
		}

		if sink != nil {
			sink(index, report)
		}
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[BuildIndexCommand]{
		commands.WithLogger[BuildIndexCommand](logger),
		commands.WithOperation[BuildIndexCommand]("feed.build_index"),
	}, opts...)

	return &BuildIndexHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander for BuildIndexCommand.
func (h *BuildIndexHandler) Execute(ctx context.Context, msg BuildIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}
