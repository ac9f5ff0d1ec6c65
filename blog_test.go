package blog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	blog "github.com/goliatone/go-blog"
)

func writePost(tb testing.TB, dir, name, content string) {
	tb.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		tb.Fatalf("write post %s: %v", name, err)
	}
}

func contentDir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()

	writePost(tb, dir, "deploying-rust-apps.md", `---
title: Deploying Rust Apps
description: A walkthrough of shipping a Rust service
author: ana
tags: [rust, tutorial]
date: "2022-07-28T18:00:00"
---

# Deploying Rust Apps

One command, not an afternoon.
`)
	writePost(tb, dir, "release-notes.md", `---
title: Release Notes
description: What changed this month
author: bo
tags: [release, Rust]
date: "2022-08-02"
---

Changes.
`)

	return dir
}

func testConfig(dir string) blog.Config {
	cfg := blog.DefaultConfig()
	cfg.Content.Dir = dir
	return cfg
}

func TestBuildProducesCanonicalFeed(t *testing.T) {
	dir := contentDir(t)

	b, err := blog.New(testConfig(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	index, report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if report.Indexed != 2 {
		t.Fatalf("expected 2 indexed posts, got %d", report.Indexed)
	}

	posts := index.SortedPosts(-1)
	if posts[0].Slug != "release-notes" || posts[1].Slug != "deploying-rust-apps" {
		t.Fatalf("canonical order mismatch: %q, %q", posts[0].Slug, posts[1].Slug)
	}

	tags := index.AllTags()
	if len(tags) != 3 {
		t.Fatalf("expected 3 distinct tags, got %v", tags)
	}
}

func TestPropsRenderHTMLAndPermalinks(t *testing.T) {
	dir := contentDir(t)

	cfg := testConfig(dir)
	cfg.Routes.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"post": "/blog/:slug",
				},
			},
		},
	}
	cfg.Routes.URLKit.Group = "frontend"

	b, err := blog.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	index, _, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	props, err := b.Props(context.Background(), index)
	if err != nil {
		t.Fatalf("Props: %v", err)
	}

	if len(props.Posts) != 2 {
		t.Fatalf("expected 2 posts in props, got %d", len(props.Posts))
	}

	second := props.Posts[1]
	if second.PublishedAt != "2022-07-28T18:00:00Z" {
		t.Fatalf("expected RFC 3339 publishedAt, got %q", second.PublishedAt)
	}
	if !strings.Contains(second.BodyHTML, "<h1") {
		t.Fatalf("expected rendered HTML body, got %q", second.BodyHTML)
	}
	if second.Permalink != "https://example.com/blog/deploying-rust-apps" {
		t.Fatalf("unexpected permalink %q", second.Permalink)
	}
}

func TestDuplicateSlugAbortsBuild(t *testing.T) {
	dir := contentDir(t)
	writePost(t, dir, "clone.md", `---
title: Clone
slug: release-notes
description: duplicate slug
author: ana
date: "2022-08-03"
---

Body.
`)

	b, err := blog.New(testConfig(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, _, err = b.Build(context.Background())
	if !errors.Is(err, blog.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestLoadOneShot(t *testing.T) {
	dir := contentDir(t)

	index, err := blog.Load(context.Background(), testConfig(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if index.Len() != 2 {
		t.Fatalf("expected 2 posts, got %d", index.Len())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Content.Dir = ""

	if _, err := blog.New(cfg); !errors.Is(err, blog.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}
