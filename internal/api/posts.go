package api

import (
	"context"
	"net/http"
	"time"

	"deadlinehub/pkg/domain"
)

// PostDraft is the caller-supplied shape for creating or replacing a post.
// The server assigns the id and the author.
type PostDraft struct {
	Title        string          `json:"title,omitempty"`
	Description  string          `json:"description,omitempty"`
	PostType     domain.PostType `json:"postType,omitempty"`
	Deadline     time.Time       `json:"deadline,omitzero"`
	TargetGroups []string        `json:"targetGroups,omitempty"`
	Priority     domain.Priority `json:"priority,omitempty"`
	Attachments  []string        `json:"attachments,omitempty"`
}

// ListPosts fetches one page of posts. status filters server-side and is
// passed through opaquely; empty means no filter.
func (c *Client) ListPosts(ctx context.Context, page, limit int, status string) (Page[domain.Post], error) {
	var resp Page[domain.Post]
	q := pageQuery(page, limit, "status", status)
	if err := c.doJSON(ctx, http.MethodGet, "/posts", q, true, nil, &resp); err != nil {
		return Page[domain.Post]{}, err
	}
	return resp, nil
}

// CreatePost submits a draft and returns the server-assigned record.
func (c *Client) CreatePost(ctx context.Context, draft PostDraft) (domain.Post, error) {
	var resp recordResponse[domain.Post]
	if err := c.doJSON(ctx, http.MethodPost, "/posts", nil, true, draft, &resp); err != nil {
		return domain.Post{}, err
	}
	return resp.Data, nil
}

// UpdatePost replaces fields of an existing post and returns the server's
// record. Zero-valued draft fields are omitted, so partial patches work.
func (c *Client) UpdatePost(ctx context.Context, id string, patch PostDraft) (domain.Post, error) {
	var resp recordResponse[domain.Post]
	if err := c.doJSON(ctx, http.MethodPut, "/posts/"+id, nil, true, patch, &resp); err != nil {
		return domain.Post{}, err
	}
	return resp.Data, nil
}

// DeletePost removes a post by id.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/posts/"+id, nil, true, nil, nil)
}
