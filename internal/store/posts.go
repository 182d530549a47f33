package store

import (
	"context"
	"fmt"

	"deadlinehub/internal/api"
	"deadlinehub/pkg/domain"
)

// DefaultPostStatus is the server-side filter applied when the caller does
// not pick one.
const DefaultPostStatus = "active"

// Posts is the collection store for deadline posts.
type Posts struct {
	*Collection[domain.Post]
	client *api.Client
}

// NewPosts binds a posts collection to the API client.
func NewPosts(client *api.Client) *Posts {
	return &Posts{
		Collection: NewCollection("post", func(p domain.Post) string { return p.ID }),
		client:     client,
	}
}

// FetchPage loads one page of posts, replacing the current page. The status
// filter is forwarded opaquely to the server. Bad arguments are rejected
// before any request is dispatched and leave the store untouched.
func (p *Posts) FetchPage(ctx context.Context, page, limit int, status string) error {
	if page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", page)
	}
	if limit <= 0 {
		return fmt.Errorf("limit must be > 0, got %d", limit)
	}
	return p.Fetch(ctx, func(ctx context.Context) (api.Page[domain.Post], error) {
		return p.client.ListPosts(ctx, page, limit, status)
	})
}

// Create submits a draft; on success the new post is prepended and returned.
func (p *Posts) Create(ctx context.Context, draft api.PostDraft) (domain.Post, error) {
	return p.Collection.Create(ctx, func(ctx context.Context) (domain.Post, error) {
		return p.client.CreatePost(ctx, draft)
	})
}

// Update replaces an existing post with the server's returned record.
func (p *Posts) Update(ctx context.Context, id string, patch api.PostDraft) (domain.Post, error) {
	return p.Collection.Update(ctx, func(ctx context.Context) (domain.Post, error) {
		return p.client.UpdatePost(ctx, id, patch)
	})
}

// Delete removes a post.
func (p *Posts) Delete(ctx context.Context, id string) error {
	return p.Collection.Delete(ctx, id, func(ctx context.Context) error {
		return p.client.DeletePost(ctx, id)
	})
}
