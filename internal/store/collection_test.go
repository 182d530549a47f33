package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deadlinehub/internal/api"
	"deadlinehub/pkg/domain"
)

type memCreds struct{ token string }

func (m *memCreds) Token() string               { return m.token }
func (m *memCreds) SetToken(token string) error { m.token = token; return nil }
func (m *memCreds) ClearToken() error           { m.token = ""; return nil }

func post(id, title string) domain.Post {
	return domain.Post{
		ID:           id,
		Title:        title,
		PostType:     domain.PostAssignment,
		Deadline:     time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		TargetGroups: []string{"A1"},
		Priority:     domain.PriorityMedium,
	}
}

func writePage(t *testing.T, w http.ResponseWriter, posts []domain.Post, total, pages, currentPage int) {
	t.Helper()
	err := json.NewEncoder(w).Encode(map[string]any{
		"data": posts, "total": total, "pages": pages, "currentPage": currentPage,
	})
	if err != nil {
		t.Errorf("encode page: %v", err)
	}
}

func TestFetchPageReplacesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("status"); got != "active" {
			t.Errorf("status filter = %q, want active", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q, want bearer token", got)
		}
		writePage(t, w, []domain.Post{post("p1", "one"), post("p2", "two")}, 2, 1, 1)
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, DefaultPostStatus); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	snap := posts.Snapshot()
	if len(snap.Items) != 2 || snap.Items[0].ID != "p1" || snap.Items[1].ID != "p2" {
		t.Fatalf("items = %+v, want [p1 p2]", snap.Items)
	}
	if snap.Total != 2 || snap.Pages != 1 || snap.CurrentPage != 1 {
		t.Fatalf("totals = %d/%d/%d, want 2/1/1", snap.Total, snap.Pages, snap.CurrentPage)
	}
	if snap.Status != StatusSucceeded {
		t.Fatalf("status = %q, want succeeded", snap.Status)
	}
}

func TestFetchPageDefaultsCurrentPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Server omits currentPage entirely.
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []domain.Post{}, "total": 0, "pages": 0})
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 3, 10, ""); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if got := posts.Snapshot().CurrentPage; got != 1 {
		t.Fatalf("currentPage = %d, want default 1", got)
	}
}

func TestCreatePrependsAndIncrements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writePage(t, w, []domain.Post{post("p1", "one"), post("p2", "two")}, 2, 1, 1)
		case http.MethodPost:
			_ = json.NewEncoder(w).Encode(map[string]any{"data": post("p3", "three")})
		}
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	created, err := posts.Create(context.Background(), api.PostDraft{Title: "three"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "p3" {
		t.Fatalf("created id = %q, want server-assigned p3", created.ID)
	}
	snap := posts.Snapshot()
	if len(snap.Items) != 3 || snap.Items[0].ID != "p3" {
		t.Fatalf("items = %+v, want p3 prepended", snap.Items)
	}
	if snap.Total != 3 {
		t.Fatalf("total = %d, want 3", snap.Total)
	}
}

func TestDeleteRemovesAndDecrements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writePage(t, w, []domain.Post{post("p1", "one"), post("p2", "two")}, 5, 1, 1)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if err := posts.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap := posts.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].ID != "p2" {
		t.Fatalf("items = %+v, want only p2", snap.Items)
	}
	if snap.Total != 4 {
		t.Fatalf("total = %d, want 4", snap.Total)
	}

	// The decrement is unconditional even when the id is not loaded.
	if err := posts.Delete(context.Background(), "elsewhere"); err != nil {
		t.Fatalf("delete absent id: %v", err)
	}
	snap = posts.Snapshot()
	if len(snap.Items) != 1 || snap.Total != 3 {
		t.Fatalf("after absent delete items=%d total=%d, want 1/3", len(snap.Items), snap.Total)
	}
}

func TestUpdateReplacesMatchingItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writePage(t, w, []domain.Post{post("p1", "one"), post("p2", "two")}, 2, 1, 1)
		case http.MethodPut:
			_ = json.NewEncoder(w).Encode(map[string]any{"data": post("p2", "renamed")})
		}
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if _, err := posts.Update(context.Background(), "p2", api.PostDraft{Title: "renamed"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	snap := posts.Snapshot()
	if snap.Items[1].Title != "renamed" {
		t.Fatalf("item title = %q, want renamed", snap.Items[1].Title)
	}
	if snap.Items[0].Title != "one" {
		t.Fatalf("unrelated item changed: %+v", snap.Items[0])
	}
}

func TestUpdateMissIsNoOp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writePage(t, w, []domain.Post{post("p1", "one")}, 30, 3, 2)
		case http.MethodPut:
			// Record lives on a page that is not loaded.
			_ = json.NewEncoder(w).Encode(map[string]any{"data": post("p9", "other page")})
		}
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 2, 10, ""); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if _, err := posts.Update(context.Background(), "p9", api.PostDraft{Title: "other page"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	snap := posts.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].ID != "p1" {
		t.Fatalf("items = %+v, want unchanged [p1]", snap.Items)
	}
}

func TestFetchFailureKeepsStaleData(t *testing.T) {
	var failing bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "database on fire"})
			return
		}
		writePage(t, w, []domain.Post{post("p1", "one")}, 1, 1, 1)
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	failing = true
	if err := posts.FetchPage(context.Background(), 2, 10, ""); err == nil {
		t.Fatalf("expected fetch error")
	}
	snap := posts.Snapshot()
	if len(snap.Items) != 1 || snap.Total != 1 {
		t.Fatalf("stale data lost: items=%d total=%d", len(snap.Items), snap.Total)
	}
	if snap.Status != StatusFailed {
		t.Fatalf("status = %q, want failed", snap.Status)
	}
	if snap.LastError != "database on fire" {
		t.Fatalf("lastError = %q, want server message", snap.LastError)
	}

	posts.ClearError()
	if got := posts.Snapshot().LastError; got != "" {
		t.Fatalf("lastError after clear = %q", got)
	}
}

func TestFetchFailureFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	srv.Close() // refuse connections: transport-level failure

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, ""); err == nil {
		t.Fatalf("expected fetch error")
	}
	if got := posts.Snapshot().LastError; got != "Failed to fetch posts" {
		t.Fatalf("lastError = %q, want generic fallback", got)
	}
}

func TestFetchPageValidation(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		writePage(t, w, nil, 0, 0, 1)
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 0, 10, ""); err == nil {
		t.Fatalf("expected page validation error")
	}
	if err := posts.FetchPage(context.Background(), 1, 0, ""); err == nil {
		t.Fatalf("expected limit validation error")
	}
	if calls != 0 {
		t.Fatalf("validation failures must not dispatch, got %d requests", calls)
	}
	if got := posts.Snapshot().Status; got != StatusIdle {
		t.Fatalf("status = %q, want idle (store untouched)", got)
	}
}

func TestEventsListNeedsNoCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("event listing sent auth header %q", got)
		}
		if got := r.URL.Query().Get("category"); got != "cultural" {
			t.Errorf("category filter = %q, want cultural", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []domain.Event{{ID: "e1", Subject: "Fest", Category: domain.CategoryCultural}},
			"total": 1, "pages": 1, "currentPage": 1,
		})
	}))
	defer srv.Close()

	events := NewEvents(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := events.FetchPage(context.Background(), 1, 12, "cultural"); err != nil {
		t.Fatalf("fetch events: %v", err)
	}
	snap := events.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].ID != "e1" {
		t.Fatalf("items = %+v, want [e1]", snap.Items)
	}
}

func TestResetDropsLoadedData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writePage(t, w, []domain.Post{post("p1", "one")}, 1, 1, 1)
	}))
	defer srv.Close()

	posts := NewPosts(api.NewClient(srv.URL, &memCreds{token: "tok"}))
	if err := posts.FetchPage(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	posts.Reset()
	snap := posts.Snapshot()
	if len(snap.Items) != 0 || snap.Total != 0 || snap.Status != StatusIdle {
		t.Fatalf("reset left state behind: %+v", snap)
	}
}
