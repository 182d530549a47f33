// Package app wires the API client, the persisted local state and the
// stores together, and owns the flows that touch more than one store.
package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"deadlinehub/internal/api"
	"deadlinehub/internal/config"
	"deadlinehub/internal/localstate"
	"deadlinehub/internal/store"
	"deadlinehub/pkg/domain"
)

// Page limits used by the dashboard refreshes.
const (
	studentPostLimit   = 5
	studentEventLimit  = 4
	professorPostLimit = 10
)

// App is the assembled client: one API client, one persisted state file and
// one instance of each store. Stores are process-wide; a view that goes
// away while a request is in flight does not stop the completion from
// applying.
type App struct {
	Client  *api.Client
	State   *localstate.Store
	Session *store.Session
	Posts   *store.Posts
	Events  *store.Events
	Prefs   *store.Prefs

	logger *slog.Logger
}

// Options tune construction beyond the config file.
type Options struct {
	// ViewportWidth seeds the initial sidebar visibility.
	ViewportWidth int
	Logger        *slog.Logger
}

// New wires the client and stores from configuration. The persisted state
// file doubles as the credential provider, so every request reads the
// current token at call time.
func New(cfg config.FileConfig, opts Options) (*App, error) {
	state, err := localstate.New(cfg.StatePath)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := api.NewClient(cfg.APIBaseURL, state)
	return &App{
		Client:  client,
		State:   state,
		Session: store.NewSession(client, state),
		Posts:   store.NewPosts(client),
		Events:  store.NewEvents(client),
		Prefs:   store.NewPrefs(state, opts.ViewportWidth),
		logger:  logger,
	}, nil
}

// ResolveSession restores the session from the persisted credential. It is
// the startup gate: nothing that depends on identity runs until it has
// returned and left the session in a terminal phase. A failed resolution is
// not fatal; the app continues unauthenticated.
func (a *App) ResolveSession(ctx context.Context) domain.User {
	user, err := a.Session.Resolve(ctx)
	if err != nil {
		a.logger.Warn("session resolution failed", "error", err)
		return domain.User{}
	}
	if snap := a.Session.Snapshot(); snap.Phase == store.PhaseAuthenticated {
		a.logger.Info("session restored", "user", user.Username, "role", user.Role)
	} else {
		a.logger.Debug("no session to restore")
	}
	return user
}

// RefreshStudentDashboard loads the student dashboard's post and event
// pages concurrently. Either fetch failing fails the refresh; each store
// keeps its own error and any stale data it had.
func (a *App) RefreshStudentDashboard(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Posts.FetchPage(ctx, 1, studentPostLimit, store.DefaultPostStatus)
	})
	g.Go(func() error {
		return a.Events.FetchPage(ctx, 1, studentEventLimit, "")
	})
	return g.Wait()
}

// RefreshProfessorDashboard loads the professor's posts page.
func (a *App) RefreshProfessorDashboard(ctx context.Context) error {
	return a.Posts.FetchPage(ctx, 1, professorPostLimit, store.DefaultPostStatus)
}

// Logout ends the session and clears both collections. The session store
// does not clear collections itself; this is the caller-side cleanup.
func (a *App) Logout() error {
	err := a.Session.Logout()
	a.Posts.Reset()
	a.Events.Reset()
	if err != nil {
		a.logger.Warn("logout left credential behind", "error", err)
		return err
	}
	a.logger.Info("logged out")
	return nil
}
