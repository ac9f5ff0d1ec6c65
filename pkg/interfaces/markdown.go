package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents so hosts can share a
// single parser instance for an entire build.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// PostSource loads every raw post document from a content location. The
// returned slice is deterministic (sorted by file path) so downstream
// indexing produces identical results across builds.
type PostSource interface {
	LoadAll(ctx context.Context) ([]*Document, error)
}

// Document represents a Markdown content file with parsed front-matter and
// body. The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so
	// hosts can detect changed files between builds without re-reading them.
	Checksum []byte
}

// FrontMatter models the metadata block at the head of a post file. Date is
// kept as the raw string so an unparseable value surfaces as a per-post
// indexing error rather than failing the YAML decode for the whole file.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	Slug        string         `yaml:"slug" json:"slug"`
	Description string         `yaml:"description" json:"description"`
	Author      string         `yaml:"author" json:"author"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Thumb       string         `yaml:"thumb" json:"thumb"`
	Cover       string         `yaml:"cover" json:"cover"`
	Date        string         `yaml:"date" json:"date"`
	Draft       bool           `yaml:"draft" json:"draft"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}
