// Package session holds the current authorization token.
package session

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Store is the single source of truth for the session token.
// An empty token means anonymous. Implementations are injectable so
// commands and controllers never reach for process-global state.
type Store interface {
	// Token returns the current token, or "" when anonymous.
	Token() string

	// Set updates the token and persists it.
	Set(token string) error

	// Clear empties the token and removes any persisted copy.
	Clear() error
}

// FileStore persists the raw token string to a single file.
// The file is read once at construction to seed in-memory state;
// afterwards the in-memory copy is authoritative.
type FileStore struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewFileStore creates a store backed by the file at path.
// A missing or unreadable file seeds an anonymous session.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Token implements Store.
func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set implements Store. The token file is written with mode 0600.
func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.token = token
	return nil
}

// Clear implements Store. A missing token file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	s.token = ""
	return nil
}

// Memory is an in-memory Store with no persistence.
type Memory struct {
	mu    sync.RWMutex
	token string
}

// NewMemory creates a Memory store seeded with token.
func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

// Token implements Store.
func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Set implements Store.
func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear implements Store.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
