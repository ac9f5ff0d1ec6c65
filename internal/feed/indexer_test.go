package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func testDoc(path, title, date string, tags ...string) *interfaces.Document {
	return &interfaces.Document{
		FilePath: path,
		FrontMatter: interfaces.FrontMatter{
			Title:       title,
			Description: "description for " + title,
			Author:      "ana",
			Tags:        tags,
			Date:        date,
		},
		Body: []byte("body of " + title),
	}
}

func TestBuildSortsByDateDescending(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("oldest.md", "Oldest", "2022-07-01"),
		testDoc("newest.md", "Newest", "2022-08-02T09:30:00Z"),
		testDoc("middle.md", "Middle", "2022-07-28T18:00:00"),
	}

	index, report, err := NewIndexer(Options{}, nil).Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if report.Indexed != 3 {
		t.Fatalf("expected 3 indexed posts, got %d", report.Indexed)
	}

	posts := index.SortedPosts(-1)
	got := []string{posts[0].Slug, posts[1].Slug, posts[2].Slug}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("canonical order mismatch: got %v want %v", got, want)
		}
	}
}

func TestBuildTieBreaksBySlugAscending(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("zeta.md", "Zeta", "2022-07-28T18:00:00"),
		testDoc("alpha.md", "Alpha", "2022-07-28T18:00:00"),
	}

	index, _, err := NewIndexer(Options{}, nil).Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	posts := index.SortedPosts(-1)
	if posts[0].Slug != "alpha" || posts[1].Slug != "zeta" {
		t.Fatalf("expected slug ascending tie-break, got %q, %q", posts[0].Slug, posts[1].Slug)
	}
}

func TestBuildRoundTripsTagsAndDate(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("post.md", "Post", "2022-07-28T18:00:00", "rust", "tutorial"),
	}

	index, _, err := NewIndexer(Options{}, nil).Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	post := index.SortedPosts(-1)[0]
	if len(post.Tags) != 2 || post.Tags[0] != "rust" || post.Tags[1] != "tutorial" {
		t.Fatalf("tags did not round-trip: %#v", post.Tags)
	}

	want := time.Date(2022, 7, 28, 18, 0, 0, 0, time.UTC)
	if !post.PublishedAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, post.PublishedAt)
	}
}

func TestBuildCollapsesDuplicateTags(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("post.md", "Post", "2022-07-28", "Rust", "rust", "tutorial"),
	}

	index, _, err := NewIndexer(Options{}, nil).Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	post := index.SortedPosts(-1)[0]
	if len(post.Tags) != 2 {
		t.Fatalf("expected case-insensitive dedup, got %#v", post.Tags)
	}
	if post.Tags[0] != "Rust" {
		t.Fatalf("expected first-seen casing preserved, got %#v", post.Tags)
	}
}

func TestBuildMalformedDateSkippedByDefault(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("good.md", "Good", "2022-07-28"),
		testDoc("bad.md", "Bad", "not-a-date"),
	}

	index, report, err := NewIndexer(Options{}, nil).Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if index.Len() != 1 {
		t.Fatalf("expected the malformed post to be excluded, got %d posts", index.Len())
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("expected 1 skipped post, got %d", len(report.Skipped))
	}
	if !errors.Is(report.Skipped[0], ErrDateInvalid) {
		t.Fatalf("expected ErrDateInvalid, got %v", report.Skipped[0])
	}
	if report.Skipped[0].Path != "bad.md" {
		t.Fatalf("expected path bad.md recorded, got %q", report.Skipped[0].Path)
	}
}

func TestBuildMalformedDateAbortsWhenStrict(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("bad.md", "Bad", "not-a-date"),
	}

	_, _, err := NewIndexer(Options{Strict: true}, nil).Build(context.Background(), docs)
	if !errors.Is(err, ErrDateInvalid) {
		t.Fatalf("expected ErrDateInvalid, got %v", err)
	}

	var perr *PostParseError
	if !errors.As(err, &perr) || perr.Path != "bad.md" {
		t.Fatalf("expected PostParseError for bad.md, got %v", err)
	}
}

func TestBuildMissingFieldsSkipped(t *testing.T) {
	doc := testDoc("incomplete.md", "", "2022-07-28")
	doc.FrontMatter.Author = ""

	_, report, err := NewIndexer(Options{}, nil).Build(context.Background(), []*interfaces.Document{doc})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("expected post with missing fields to be skipped, got %#v", report)
	}
}

func TestBuildDuplicateSlugAlwaysFatal(t *testing.T) {
	docs := []*interfaces.Document{
		testDoc("a/post.md", "First", "2022-07-01"),
		testDoc("b/post.md", "Second", "2022-08-01"),
	}

	_, _, err := NewIndexer(Options{}, nil).Build(context.Background(), docs)
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}

	var derr *DuplicateSlugError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateSlugError, got %T", err)
	}
	if derr.Slug != "post" || derr.FirstPath != "a/post.md" || derr.SecondPath != "b/post.md" {
		t.Fatalf("conflict details mismatch: %#v", derr)
	}
}

func TestBuildSlugPrefersFrontMatter(t *testing.T) {
	doc := testDoc("whatever.md", "Post", "2022-07-28")
	doc.FrontMatter.Slug = "custom-slug"

	index, _, err := NewIndexer(Options{}, nil).Build(context.Background(), []*interfaces.Document{doc})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := index.SortedPosts(-1)[0].Slug; got != "custom-slug" {
		t.Fatalf("expected front-matter slug, got %q", got)
	}
}

func TestBuildExcludesDrafts(t *testing.T) {
	draft := testDoc("draft.md", "Draft", "2022-07-28")
	draft.FrontMatter.Draft = true

	index, report, err := NewIndexer(Options{}, nil).Build(context.Background(), []*interfaces.Document{draft})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if index.Len() != 0 || report.Drafts != 1 {
		t.Fatalf("expected draft excluded, got %d posts, %d drafts", index.Len(), report.Drafts)
	}

	index, _, err = NewIndexer(Options{IncludeDrafts: true}, nil).Build(context.Background(), []*interfaces.Document{draft})
	if err != nil {
		t.Fatalf("Build with drafts: %v", err)
	}
	if index.Len() != 1 {
		t.Fatalf("expected draft included, got %d posts", index.Len())
	}
}

func TestParseDateNeverCoerces(t *testing.T) {
	for _, raw := range []string{"not-a-date", "2022-13-40", "", "yesterday"} {
		if ts, err := parseDate(raw); err == nil {
			t.Fatalf("expected %q to be rejected, got %v", raw, ts)
		}
	}
}
