package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// PostProps is the JSON-serializable projection of a post handed to the page
// renderer. PublishedAt is serialized as an RFC 3339 string.
type PostProps struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Thumb       string   `json:"thumb,omitempty"`
	Cover       string   `json:"cover,omitempty"`
	PublishedAt string   `json:"publishedAt"`
	Body        string   `json:"body,omitempty"`
	BodyHTML    string   `json:"bodyHtml,omitempty"`
	Permalink   string   `json:"permalink,omitempty"`
}

// Props is the static props object consumed by the page renderer.
type Props struct {
	Posts []PostProps `json:"posts"`
}

// PropsOptions controls how renderer props are assembled from the index.
type PropsOptions struct {
	// Limit bounds the number of posts included; negative means all.
	Limit int
	// IncludeBody carries the raw Markdown body into the props.
	IncludeBody bool
	// Parser, when set, renders each body to HTML for the props.
	Parser       interfaces.MarkdownParser
	ParseOptions interfaces.ParseOptions
	// Resolver, when set, attaches a permalink to each post.
	Resolver interfaces.PostURLResolver
}

// BuildProps projects the canonical post order into renderer props. The index
// itself is never mutated; rendering and permalink resolution happen on the
// copies returned by SortedPosts.
func BuildProps(ctx context.Context, index *Index, opts PropsOptions) (*Props, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts := index.SortedPosts(opts.Limit)
	props := &Props{Posts: make([]PostProps, 0, len(posts))}

	for _, post := range posts {
		entry := PostProps{
			Slug:        post.Slug,
			Title:       post.Title,
			Description: post.Description,
			Author:      post.Author,
			Tags:        append([]string(nil), post.Tags...),
			Thumb:       post.ThumbnailPath,
			Cover:       post.CoverPath,
			PublishedAt: post.PublishedAt.Format(time.RFC3339),
		}

		if opts.IncludeBody {
			entry.Body = string(post.Body)
		}

		if opts.Parser != nil {
			html, err := opts.Parser.ParseWithOptions(post.Body, opts.ParseOptions)
			if err != nil {
				return nil, fmt.Errorf("feed props: render %s: %w", post.Slug, err)
			}
			entry.BodyHTML = string(html)
		}

		if opts.Resolver != nil {
			permalink, err := opts.Resolver.Resolve(ctx, post)
			if err != nil {
				return nil, fmt.Errorf("feed props: resolve permalink %s: %w", post.Slug, err)
			}
			entry.Permalink = permalink
		}

		props.Posts = append(props.Posts, entry)
	}

	return props, nil
}
