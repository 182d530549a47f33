// Package localstate persists the handful of values that survive process
// restarts: the bearer credential and the dark-mode flag. Values live under
// fixed keys in a single JSON file. Reads always go back to disk so a value
// written by one component is seen by the next read anywhere else.
package localstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const (
	// KeyToken holds the bearer credential.
	KeyToken = "token"
	// KeyDarkMode holds the persisted theme flag as "true"/"false".
	KeyDarkMode = "darkMode"
)

// ErrNotFound reports a key with no stored value.
var ErrNotFound = errors.New("localstate: key not found")

// Store reads and writes the persisted key/value file.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates the parent directory if missing. The file itself is created
// lazily on first write.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("localstate path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set writes key=value, creating the file on first use.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// Token returns the stored bearer credential, empty when absent. It reads
// the file on every call so a credential change is picked up by the next
// request. Satisfies api.CredentialProvider.
func (s *Store) Token() string {
	v, err := s.Get(KeyToken)
	if err != nil {
		return ""
	}
	return v
}

// SetToken persists the bearer credential.
func (s *Store) SetToken(token string) error {
	return s.Set(KeyToken, token)
}

// ClearToken drops the bearer credential.
func (s *Store) ClearToken() error {
	return s.Delete(KeyToken)
}

// DarkMode reports the persisted theme flag; absent or malformed reads as
// false (light theme).
func (s *Store) DarkMode() bool {
	v, err := s.Get(KeyDarkMode)
	if err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// SetDarkMode persists the theme flag.
func (s *Store) SetDarkMode(on bool) error {
	return s.Set(KeyDarkMode, strconv.FormatBool(on))
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return values, nil
}

func (s *Store) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
