package feed

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// dateLayouts are tried in order when parsing the front-matter date string.
// Zone-less layouts are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Options configures indexing policy.
type Options struct {
	// Strict aborts the build on the first malformed post. The default
	// (lenient) policy skips the post and records it in the build report.
	Strict bool
	// IncludeDrafts keeps posts marked draft in the index.
	IncludeDrafts bool
}

// Indexer validates raw post documents and produces the canonical index.
type Indexer struct {
	opts   Options
	logger interfaces.Logger
}

// NewIndexer constructs an indexer with the supplied policy. A nil logger is
// replaced with a no-op implementation.
func NewIndexer(opts Options, logger interfaces.Logger) *Indexer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Indexer{opts: opts, logger: logger}
}

// BuildReport aggregates the outcome of an index build.
type BuildReport struct {
	// Total counts the documents presented to the indexer.
	Total int
	// Indexed counts the posts admitted into the index.
	Indexed int
	// Drafts counts posts excluded because they are marked draft.
	Drafts int
	// Skipped lists malformed posts excluded under the lenient policy.
	Skipped []*PostParseError
}

// Build validates every document, excludes or rejects malformed ones per the
// configured policy, and returns the immutable canonical index. Duplicate
// slugs abort the build regardless of policy.
func (ix *Indexer) Build(ctx context.Context, docs []*interfaces.Document) (*Index, *BuildReport, error) {
	report := &BuildReport{Total: len(docs)}

	posts := make([]interfaces.Post, 0, len(docs))
	seen := make(map[string]string, len(docs))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		if doc == nil {
			continue
		}

		if doc.FrontMatter.Draft && !ix.opts.IncludeDrafts {
			report.Drafts++
			continue
		}

		post, err := ix.buildPost(doc)
		if err != nil {
			perr := &PostParseError{Path: doc.FilePath, Slug: doc.FrontMatter.Slug, Err: err}
			if ix.opts.Strict {
				return nil, report, perr
			}
			report.Skipped = append(report.Skipped, perr)
			logging.WithPostContext(ix.logger, doc.FilePath, doc.FrontMatter.Slug).
				Warn("post excluded from index", "error", err)
			continue
		}

		if first, ok := seen[post.Slug]; ok {
			return nil, report, &DuplicateSlugError{
				Slug:       post.Slug,
				FirstPath:  first,
				SecondPath: doc.FilePath,
			}
		}
		seen[post.Slug] = doc.FilePath

		posts = append(posts, post)
	}

	sortPosts(posts)
	report.Indexed = len(posts)

	ix.logger.Info("post index built",
		"total", report.Total,
		"indexed", report.Indexed,
		"drafts", report.Drafts,
		"skipped", len(report.Skipped))

	return newIndex(posts), report, nil
}

func (ix *Indexer) buildPost(doc *interfaces.Document) (interfaces.Post, error) {
	fm := doc.FrontMatter

	title := strings.TrimSpace(fm.Title)
	description := strings.TrimSpace(fm.Description)
	author := strings.TrimSpace(fm.Author)
	rawDate := strings.TrimSpace(fm.Date)

	errs := validation.Errors{}
	if title == "" {
		errs["title"] = validation.NewError("blog.post.title_required", ErrTitleRequired.Error())
	}
	if description == "" {
		errs["description"] = validation.NewError("blog.post.description_required", ErrDescriptionRequired.Error())
	}
	if author == "" {
		errs["author"] = validation.NewError("blog.post.author_required", ErrAuthorRequired.Error())
	}
	if rawDate == "" {
		errs["date"] = validation.NewError("blog.post.date_required", ErrDateRequired.Error())
	}
	if len(errs) > 0 {
		return interfaces.Post{}, errs
	}

	publishedAt, err := parseDate(rawDate)
	if err != nil {
		return interfaces.Post{}, err
	}

	postSlug, err := resolveSlug(fm.Slug, doc.FilePath)
	if err != nil {
		return interfaces.Post{}, err
	}

	return interfaces.Post{
		Slug:          postSlug,
		Title:         title,
		Description:   description,
		Author:        author,
		Tags:          normalizeTags(fm.Tags),
		ThumbnailPath: strings.TrimSpace(fm.Thumb),
		CoverPath:     strings.TrimSpace(fm.Cover),
		PublishedAt:   publishedAt,
		Body:          doc.Body,
	}, nil
}

// parseDate rejects unparseable dates outright; a malformed date must never
// be coerced to "now" or the epoch.
func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateInvalid, raw)
}

// resolveSlug prefers an explicit front-matter slug and falls back to the
// file name stem. Either way the value is normalized and validated.
func resolveSlug(explicit, path string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		base := filepath.Base(path)
		candidate = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if strings.TrimSpace(candidate) == "" {
		return "", ErrSlugRequired
	}

	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrSlugInvalid, candidate)
	}
	if !slug.IsValid(normalized) {
		return "", fmt.Errorf("%w: %q", ErrSlugInvalid, normalized)
	}
	return normalized, nil
}

// normalizeTags trims whitespace and collapses duplicates case-insensitively,
// preserving the casing of the first occurrence for display. The result is
// sorted so the tag list is deterministic.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// sortPosts establishes the canonical order: published date descending with
// ascending slug as the deterministic tie-break.
func sortPosts(posts []interfaces.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].Slug < posts[j].Slug
		}
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
}
