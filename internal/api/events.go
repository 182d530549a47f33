package api

import (
	"context"
	"net/http"
	"time"

	"deadlinehub/pkg/domain"
)

// EventDraft is the caller-supplied shape for creating or replacing an event.
type EventDraft struct {
	Subject     string               `json:"subject,omitempty"`
	Description string               `json:"description,omitempty"`
	EventDate   time.Time            `json:"eventDate,omitzero"`
	Location    string               `json:"location,omitempty"`
	Category    domain.EventCategory `json:"category,omitempty"`
	ImageURL    string               `json:"imageUrl,omitempty"`
}

// ListEvents fetches one page of events. Listing needs no credential;
// category filters server-side, empty means all.
func (c *Client) ListEvents(ctx context.Context, page, limit int, category string) (Page[domain.Event], error) {
	var resp Page[domain.Event]
	q := pageQuery(page, limit, "category", category)
	if err := c.doJSON(ctx, http.MethodGet, "/events", q, false, nil, &resp); err != nil {
		return Page[domain.Event]{}, err
	}
	return resp, nil
}

// CreateEvent submits a draft and returns the server-assigned record.
func (c *Client) CreateEvent(ctx context.Context, draft EventDraft) (domain.Event, error) {
	var resp recordResponse[domain.Event]
	if err := c.doJSON(ctx, http.MethodPost, "/events", nil, true, draft, &resp); err != nil {
		return domain.Event{}, err
	}
	return resp.Data, nil
}

// UpdateEvent replaces fields of an existing event.
func (c *Client) UpdateEvent(ctx context.Context, id string, patch EventDraft) (domain.Event, error) {
	var resp recordResponse[domain.Event]
	if err := c.doJSON(ctx, http.MethodPut, "/events/"+id, nil, true, patch, &resp); err != nil {
		return domain.Event{}, err
	}
	return resp.Data, nil
}

// DeleteEvent removes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/events/"+id, nil, true, nil, nil)
}
