// Package urlresolver builds public post permalinks on top of go-urlkit.
package urlresolver

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options configures the go-urlkit backed resolver.
type Options struct {
	Manager   *urlkit.RouteManager
	Group     string
	Route     string
	SlugParam string
}

// PostURLResolver resolves post permalinks using a go-urlkit RouteManager.
// It returns an empty string when no manager or group is configured so hosts
// can leave routing off entirely.
type PostURLResolver struct {
	manager   *urlkit.RouteManager
	group     string
	route     string
	slugParam string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

var _ interfaces.PostURLResolver = (*PostURLResolver)(nil)

// New constructs a resolver backed by go-urlkit.
func New(opts Options) *PostURLResolver {
	if opts.Route == "" {
		opts.Route = "post"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}

	return &PostURLResolver{
		manager:   opts.Manager,
		group:     strings.TrimSpace(opts.Group),
		route:     strings.TrimSpace(opts.Route),
		slugParam: opts.SlugParam,

		groupCache: make(map[string]*urlkit.Group),
	}
}

// Resolve builds the permalink for a post using the configured route.
func (r *PostURLResolver) Resolve(ctx context.Context, post interfaces.Post) (string, error) {
	_ = ctx // reserved for future use
	if r == nil || r.manager == nil || r.group == "" {
		return "", nil
	}

	group, err := r.groupForPath(r.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, r.route)
	if err != nil {
		return "", err
	}

	builder.WithParam(r.slugParam, post.Slug)

	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	return url, nil
}

func (r *PostURLResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, fmt.Errorf("urlresolver: invalid route group path %q", path)
	}

	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *PostURLResolver) safeBuilder(group *urlkit.Group, route string) (*urlkit.Builder, error) {
	if group == nil {
		return nil, fmt.Errorf("urlresolver: urlkit group is nil")
	}
	var (
		builder *urlkit.Builder
		err     error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urlresolver: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (*urlkit.Group, error) {
	if manager == nil {
		return nil, fmt.Errorf("urlresolver: route manager not configured")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urlresolver: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (*urlkit.Group, error) {
	if parent == nil {
		return nil, fmt.Errorf("urlresolver: parent group is nil")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urlresolver: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
