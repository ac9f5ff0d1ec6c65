package feed

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTitleRequired       = errors.New("feed: title is required")
	ErrDescriptionRequired = errors.New("feed: description is required")
	ErrAuthorRequired      = errors.New("feed: author is required")
	ErrDateRequired        = errors.New("feed: date is required")
	ErrDateInvalid         = errors.New("feed: date is not a recognized timestamp")
	ErrSlugRequired        = errors.New("feed: slug is required")
	ErrSlugInvalid         = errors.New("feed: slug contains invalid characters")
	ErrDuplicateSlug       = errors.New("feed: slug already exists")
)

// PostParseError reports a single post that failed validation or parsing.
// Depending on indexing policy the post is either skipped (lenient) or the
// whole build aborts (strict).
type PostParseError struct {
	Path string
	Slug string
	Err  error
}

func (e *PostParseError) Error() string {
	if e == nil {
		return "feed: invalid post"
	}
	path := strings.TrimSpace(e.Path)
	if path == "" {
		path = "<unknown>"
	}
	return fmt.Sprintf("feed: invalid post %s: %v", path, e.Err)
}

func (e *PostParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DuplicateSlugError reports two posts resolving to the same slug. It is
// always fatal: skipping either post would silently drop content.
type DuplicateSlugError struct {
	Slug       string
	FirstPath  string
	SecondPath string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	return fmt.Sprintf("%s: slug=%s first=%s second=%s", ErrDuplicateSlug.Error(), e.Slug, e.FirstPath, e.SecondPath)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}
