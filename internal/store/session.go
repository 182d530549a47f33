package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"deadlinehub/internal/api"
	"deadlinehub/pkg/domain"
)

// Phase is the session resolution state.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseResolving       Phase = "resolving"
	PhaseAuthenticated   Phase = "authenticated"
)

// ErrUnauthenticated reports an operation that needs a signed-in user.
var ErrUnauthenticated = errors.New("not authenticated")

// credentialStore is the slice of localstate the session needs.
type credentialStore interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
}

// SessionState is a point-in-time copy of the session for readers.
type SessionState struct {
	Phase     Phase
	User      domain.User
	LastError string
}

// Session owns the authenticated identity. It moves from unauthenticated
// through resolving to a terminal phase; dependent views wait for Resolve
// to return before rendering.
type Session struct {
	mu     sync.RWMutex
	client *api.Client
	creds  credentialStore
	now    func() time.Time

	phase     Phase
	user      domain.User
	lastError string
}

// NewSession builds an unauthenticated session backed by the API client and
// the persisted credential store.
func NewSession(client *api.Client, creds credentialStore) *Session {
	return &Session{
		client: client,
		creds:  creds,
		now:    time.Now,
		phase:  PhaseUnauthenticated,
	}
}

// Resolve attempts to restore the session from the persisted credential.
// It always leaves the session in a terminal phase. A missing credential or
// one whose JWT exp claim has already passed resolves to unauthenticated
// without a network round-trip; a rejected credential is dropped so the
// next start does not retry it.
func (s *Session) Resolve(ctx context.Context) (domain.User, error) {
	s.setPhase(PhaseResolving)

	token := s.creds.Token()
	if token == "" {
		s.setPhase(PhaseUnauthenticated)
		return domain.User{}, nil
	}
	if tokenExpired(token, s.now()) {
		_ = s.creds.ClearToken()
		s.setPhase(PhaseUnauthenticated)
		return domain.User{}, nil
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			_ = s.creds.ClearToken()
		}
		s.setPhase(PhaseUnauthenticated)
		return domain.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.phase = PhaseAuthenticated
	return user, nil
}

// Login exchanges credentials for an identity, persists the returned token
// and transitions to authenticated. The identity is returned so the caller
// can navigate on success. On failure the session stays unauthenticated
// with the server's message recorded.
func (s *Session) Login(ctx context.Context, creds api.Credentials) (domain.User, error) {
	s.setPhase(PhaseResolving)
	user, token, err := s.client.Login(ctx, creds)
	if err != nil {
		s.failAuth(err, "Login failed")
		return domain.User{}, err
	}
	return user, s.establish(user, token)
}

// Register creates an account with the role-conditional payload and signs
// the new user in. Same success and failure contract as Login.
func (s *Session) Register(ctx context.Context, reg api.Registration) (domain.User, error) {
	s.setPhase(PhaseResolving)
	user, token, err := s.client.Register(ctx, reg)
	if err != nil {
		s.failAuth(err, "Registration failed")
		return domain.User{}, err
	}
	return user, s.establish(user, token)
}

// Logout drops the persisted credential and clears the identity. Loaded
// collections are not cleared here; that is the caller's job.
func (s *Session) Logout() error {
	err := s.creds.ClearToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = domain.User{}
	s.phase = PhaseUnauthenticated
	s.lastError = ""
	return err
}

// ClearError resets the error message without touching anything else.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{Phase: s.phase, User: s.user, LastError: s.lastError}
}

// User returns the identity and whether the session is authenticated.
func (s *Session) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.phase == PhaseAuthenticated
}

func (s *Session) establish(user domain.User, token string) error {
	if err := s.creds.SetToken(token); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.phase = PhaseUnauthenticated
		s.lastError = "Failed to persist credential"
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.phase = PhaseAuthenticated
	s.lastError = ""
	return nil
}

func (s *Session) failAuth(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseUnauthenticated
	s.lastError = messageFor(err, fallback)
}

func (s *Session) setPhase(p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
	if p == PhaseResolving {
		s.lastError = ""
	}
}

// tokenExpired decodes the token without verifying its signature (the
// server is the authority) and reports whether the exp claim has passed.
// Tokens that do not parse or carry no exp are left for the server to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
