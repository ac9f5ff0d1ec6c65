package feedcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog/internal/feed"
)

func writePost(tb testing.TB, dir, name, content string) {
	tb.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		tb.Fatalf("write post %s: %v", name, err)
	}
}

func TestBuildIndexCommandValidation(t *testing.T) {
	handler := NewBuildIndexHandler(nil, nil)

	err := handler.Execute(context.Background(), BuildIndexCommand{})
	if err == nil {
		t.Fatal("expected validation error for missing content_dir")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestBuildIndexCommandBuildsIndex(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "first.md", `---
title: First
description: first post
author: ana
tags: [rust]
date: "2022-07-28T18:00:00"
---

Body.
`)
	writePost(t, dir, "second.md", `---
title: Second
description: second post
author: bo
tags: [release]
date: "2022-08-02"
---

Body.
`)

	var (
		gotIndex  *feed.Index
		gotReport *feed.BuildReport
	)
	sink := func(index *feed.Index, report *feed.BuildReport) {
		gotIndex = index
		gotReport = report
	}

	handler := NewBuildIndexHandler(sink, nil)
	err := handler.Execute(context.Background(), BuildIndexCommand{ContentDir: dir})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if gotIndex == nil || gotReport == nil {
		t.Fatal("expected sink to receive the built index")
	}
	if gotIndex.Len() != 2 {
		t.Fatalf("expected 2 indexed posts, got %d", gotIndex.Len())
	}
	if gotIndex.SortedPosts(1)[0].Slug != "second" {
		t.Fatalf("expected most recent post first, got %q", gotIndex.SortedPosts(1)[0].Slug)
	}
}

func TestBuildIndexCommandStrictAbortsOnMalformedPost(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bad.md", `---
title: Bad
description: bad post
author: ana
date: "not-a-date"
---

Body.
`)

	handler := NewBuildIndexHandler(nil, nil)
	err := handler.Execute(context.Background(), BuildIndexCommand{ContentDir: dir, Strict: true})
	if err == nil {
		t.Fatal("expected strict build to abort on malformed date")
	}
}
