package feed

import (
	"sort"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Index is the immutable canonical post set. It is constructed once per
// build; every query returns copies so callers cannot disturb the canonical
// order.
type Index struct {
	posts []interfaces.Post
	tags  []string
	byTag map[string][]int
}

var _ interfaces.PostFeed = (*Index)(nil)

// newIndex assumes posts are already in canonical order and derives the tag
// index from the full post set.
func newIndex(posts []interfaces.Post) *Index {
	ix := &Index{
		posts: posts,
		byTag: make(map[string][]int),
	}

	display := make(map[string]string)
	for i, post := range posts {
		for _, tag := range post.Tags {
			key := strings.ToLower(tag)
			if _, ok := display[key]; !ok {
				display[key] = tag
			}
			ix.byTag[key] = append(ix.byTag[key], i)
		}
	}

	ix.tags = make([]string, 0, len(display))
	for _, tag := range display {
		ix.tags = append(ix.tags, tag)
	}
	sort.Slice(ix.tags, func(i, j int) bool {
		return strings.ToLower(ix.tags[i]) < strings.ToLower(ix.tags[j])
	})

	return ix
}

// Len reports the number of indexed posts.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.posts)
}

// SortedPosts returns up to limit posts in canonical order. A negative limit
// returns every post; zero returns an empty slice; a limit beyond the post
// count returns the full sequence unchanged.
func (ix *Index) SortedPosts(limit int) []interfaces.Post {
	if ix == nil || limit == 0 {
		return []interfaces.Post{}
	}
	n := len(ix.posts)
	if limit < 0 || limit > n {
		limit = n
	}
	out := make([]interfaces.Post, limit)
	copy(out, ix.posts[:limit])
	return out
}

// AllTags returns the deduplicated union of tags across all posts, sorted
// case-insensitively for determinism.
func (ix *Index) AllTags() []string {
	if ix == nil {
		return []string{}
	}
	out := make([]string, len(ix.tags))
	copy(out, ix.tags)
	return out
}

// PostsByTag returns the posts carrying the supplied tag, matched
// case-insensitively, preserving canonical order.
func (ix *Index) PostsByTag(tag string) []interfaces.Post {
	if ix == nil {
		return []interfaces.Post{}
	}
	key := strings.ToLower(strings.TrimSpace(tag))
	indexes := ix.byTag[key]
	out := make([]interfaces.Post, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, ix.posts[i])
	}
	return out
}
