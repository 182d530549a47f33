package store

import (
	"context"
	"fmt"

	"deadlinehub/internal/api"
	"deadlinehub/pkg/domain"
)

// Events is the collection store for campus events.
type Events struct {
	*Collection[domain.Event]
	client *api.Client
}

// NewEvents binds an events collection to the API client.
func NewEvents(client *api.Client) *Events {
	return &Events{
		Collection: NewCollection("event", func(e domain.Event) string { return e.ID }),
		client:     client,
	}
}

// FetchPage loads one page of events. category filters server-side; empty
// means all categories. Listing events needs no credential.
func (e *Events) FetchPage(ctx context.Context, page, limit int, category string) error {
	if page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", page)
	}
	if limit <= 0 {
		return fmt.Errorf("limit must be > 0, got %d", limit)
	}
	return e.Fetch(ctx, func(ctx context.Context) (api.Page[domain.Event], error) {
		return e.client.ListEvents(ctx, page, limit, category)
	})
}

// Create submits a draft; on success the new event is prepended and returned.
func (e *Events) Create(ctx context.Context, draft api.EventDraft) (domain.Event, error) {
	return e.Collection.Create(ctx, func(ctx context.Context) (domain.Event, error) {
		return e.client.CreateEvent(ctx, draft)
	})
}

// Update replaces an existing event with the server's returned record.
func (e *Events) Update(ctx context.Context, id string, patch api.EventDraft) (domain.Event, error) {
	return e.Collection.Update(ctx, func(ctx context.Context) (domain.Event, error) {
		return e.client.UpdateEvent(ctx, id, patch)
	})
}

// Delete removes an event.
func (e *Events) Delete(ctx context.Context, id string) error {
	return e.Collection.Delete(ctx, id, func(ctx context.Context) error {
		return e.client.DeleteEvent(ctx, id)
	})
}
