// Package store holds the client-side state containers: the paginated
// collections, the authenticated session and the UI preferences. Each store
// owns its slice of state exclusively; readers get copies via Snapshot.
package store

import (
	"context"
	"errors"
	"sync"

	"deadlinehub/internal/api"
)

// Status is the request lifecycle state tracked per collection.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// CollectionState is a point-in-time copy of a collection for readers.
// Items holds only the current page; Total is the authoritative count
// across all pages.
type CollectionState[T any] struct {
	Items       []T
	Total       int
	Pages       int
	CurrentPage int
	Status      Status
	LastError   string
}

// Collection is the shared state container behind the post and event
// stores. The mutex guards only the merge of a completed response; requests
// run unlocked, so responses apply in completion order, not issue order.
// A slow request finishing late overwrites a faster one; nothing fences it.
type Collection[T any] struct {
	mu   sync.RWMutex
	noun string
	id   func(T) string

	items       []T
	total       int
	pages       int
	currentPage int
	status      Status
	lastError   string
}

// NewCollection builds an empty collection. noun names the record kind in
// fallback error messages ("post", "event"); id extracts a record's id.
func NewCollection[T any](noun string, id func(T) string) *Collection[T] {
	return &Collection[T]{
		noun:        noun,
		id:          id,
		currentPage: 1,
		status:      StatusIdle,
	}
}

// Fetch runs one page request and replaces the collection contents with the
// returned page. On failure the previous items and totals stay in place;
// stale data beats an empty screen.
func (c *Collection[T]) Fetch(ctx context.Context, fetch func(context.Context) (api.Page[T], error)) error {
	c.begin()
	page, err := fetch(ctx)
	if err != nil {
		c.fail(err, "Failed to fetch "+c.noun+"s")
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = page.Data
	c.total = page.Total
	c.pages = page.Pages
	c.currentPage = page.CurrentPage
	if c.currentPage == 0 {
		c.currentPage = 1
	}
	c.status = StatusSucceeded
	return nil
}

// Create runs one create request and, on success, prepends the
// server-assigned record and bumps Total. The record is returned so the
// caller can reset its draft on success. There is no optimistic insertion;
// nothing changes locally until the server confirms.
func (c *Collection[T]) Create(ctx context.Context, create func(context.Context) (T, error)) (T, error) {
	c.begin()
	rec, err := create(ctx)
	if err != nil {
		c.fail(err, "Failed to create "+c.noun)
		return rec, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{rec}, c.items...)
	c.total++
	c.status = StatusSucceeded
	return rec, nil
}

// Update runs one update request and, on success, replaces the matching
// item with the server's record. A miss is a no-op: the item belongs to a
// page that is not loaded. Update does not touch the lifecycle status.
func (c *Collection[T]) Update(ctx context.Context, update func(context.Context) (T, error)) (T, error) {
	rec, err := update(ctx)
	if err != nil {
		c.setError(err, "Failed to update "+c.noun)
		return rec, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(rec)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = rec
			break
		}
	}
	return rec, nil
}

// Delete runs one delete request and, on success, removes the matching item
// and decrements Total. The decrement is unconditional even when the id is
// not on the loaded page, mirroring the server having one fewer record.
func (c *Collection[T]) Delete(ctx context.Context, id string, del func(context.Context) error) error {
	if err := del(ctx); err != nil {
		c.setError(err, "Failed to delete "+c.noun)
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.total--
	return nil
}

// ClearError resets the error message without touching anything else.
func (c *Collection[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = ""
}

// Reset drops all loaded data and returns the collection to idle. Used when
// the session ends; collections are not cleared automatically on logout.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.total = 0
	c.pages = 0
	c.currentPage = 1
	c.status = StatusIdle
	c.lastError = ""
}

// Snapshot returns a copy of the current state. The Items slice is copied
// so readers never alias the store's backing array.
func (c *Collection[T]) Snapshot() CollectionState[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return CollectionState[T]{
		Items:       items,
		Total:       c.total,
		Pages:       c.pages,
		CurrentPage: c.currentPage,
		Status:      c.status,
		LastError:   c.lastError,
	}
}

func (c *Collection[T]) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusPending
	c.lastError = ""
}

func (c *Collection[T]) fail(err error, fallback string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusFailed
	c.lastError = messageFor(err, fallback)
}

func (c *Collection[T]) setError(err error, fallback string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = messageFor(err, fallback)
}

// messageFor prefers the server-supplied message and falls back to a
// generic one for transport failures.
func messageFor(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
