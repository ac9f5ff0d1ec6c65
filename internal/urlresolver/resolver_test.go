package urlresolver

import (
	"context"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func testManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"post": "/blog/:slug",
				},
			},
		},
	})
}

func TestResolveBuildsPermalink(t *testing.T) {
	resolver := New(Options{
		Manager: testManager(),
		Group:   "frontend",
	})

	url, err := resolver.Resolve(context.Background(), interfaces.Post{Slug: "deploying-rust-apps"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if url != "https://example.com/blog/deploying-rust-apps" {
		t.Fatalf("unexpected permalink %q", url)
	}
}

func TestResolveWithoutManagerReturnsEmpty(t *testing.T) {
	resolver := New(Options{})

	url, err := resolver.Resolve(context.Background(), interfaces.Post{Slug: "anything"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty permalink when unconfigured, got %q", url)
	}
}
