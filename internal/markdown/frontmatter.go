package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front-matter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	frontmatter, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  frontmatter,
		Body:         body,
		LastModified: modified,
	}, nil
}

// frontMatterEnvelope keeps Date as a raw string so malformed dates are
// reported per post by the indexer instead of failing the YAML decode.
type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Description string         `yaml:"description"`
	Author      string         `yaml:"author"`
	Tags        []string       `yaml:"tags"`
	Thumb       string         `yaml:"thumb"`
	Cover       string         `yaml:"cover"`
	Date        string         `yaml:"date"`
	Draft       bool           `yaml:"draft"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+9)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Description != "" {
		raw["description"] = env.Description
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Thumb != "" {
		raw["thumb"] = env.Thumb
	}
	if env.Cover != "" {
		raw["cover"] = env.Cover
	}
	if env.Date != "" {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:       env.Title,
		Slug:        env.Slug,
		Description: env.Description,
		Author:      env.Author,
		Tags:        append([]string(nil), env.Tags...),
		Thumb:       env.Thumb,
		Cover:       env.Cover,
		Date:        env.Date,
		Draft:       env.Draft,
		Custom:      cloneMap(env.Custom),
		Raw:         raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
