package interfaces

import (
	"context"
	"time"
)

// Post is the canonical, validated representation of a blog article. Posts
// are constructed once per build and never mutated afterwards.
type Post struct {
	Slug          string
	Title         string
	Description   string
	Author        string
	Tags          []string
	ThumbnailPath string
	CoverPath     string
	PublishedAt   time.Time
	Body          []byte
	BodyHTML      []byte
	Permalink     string
}

// PostFeed exposes pure, deterministic queries over the indexed post set.
// Implementations never fail once constructed from a valid index.
type PostFeed interface {
	// Len reports the number of indexed posts.
	Len() int
	// SortedPosts returns up to limit posts in canonical order (published
	// date descending, slug ascending). A negative limit returns all posts;
	// zero returns an empty slice.
	SortedPosts(limit int) []Post
	// AllTags returns the deduplicated union of tags across all posts,
	// sorted for determinism.
	AllTags() []string
	// PostsByTag returns the posts carrying the supplied tag, matched
	// case-insensitively, in canonical order.
	PostsByTag(tag string) []Post
}

// PostURLResolver builds the public permalink for a post. Implementations
// return an empty string when no route is configured for the post.
type PostURLResolver interface {
	Resolve(ctx context.Context, post Post) (string, error)
}
