package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// SourceConfig controls how the post source discovers files.
type SourceConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
}

// Source implements interfaces.PostSource over a filesystem-backed loader.
// Loading is a pure read of the filesystem; nothing is mutated.
type Source struct {
	cfg    SourceConfig
	loader *Loader
	logger interfaces.Logger
}

var _ interfaces.PostSource = (*Source)(nil)

// NewSource constructs a post source rooted at the configured base path.
func NewSource(cfg SourceConfig, logger interfaces.Logger) (*Source, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return NewSourceFS(filesystem, cfg, logger), nil
}

// NewSourceFS constructs a post source over the supplied filesystem. Tests
// and embedded content use this directly.
func NewSourceFS(filesystem fs.FS, cfg SourceConfig, logger interfaces.Logger) *Source {
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Source{
		cfg:    cfg,
		loader: loader,
		logger: logger,
	}
}

// LoadAll reads every post document under the configured directory. Results
// are sorted by file path so downstream indexing is deterministic.
func (s *Source) LoadAll(ctx context.Context) ([]*interfaces.Document, error) {
	results, err := s.loader.LoadDirectory(ctx, ".", LoadParams{})
	if err != nil {
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		docs = append(docs, result.Document)
	}

	s.logger.Debug("post source loaded", "count", len(docs), "dir", s.cfg.BasePath)
	return docs, nil
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("post source: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
