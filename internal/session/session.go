// Package session holds the authenticated admin's credential and profile,
// restored from persisted storage at startup.
package session

import (
	"sync"

	"admin-console/internal/models"
	"admin-console/internal/util"

	"go.uber.org/zap"
)

// Store is the session state container. It implements api.TokenSource: the
// HTTP client reads the current token on every outgoing request.
type Store struct {
	mu        sync.RWMutex
	token     string
	principal *models.Principal
	storage   Storage
	logger    *zap.Logger
}

// NewStore creates a session store, restoring any persisted session. A failed
// restore leaves the store logged out rather than failing construction.
func NewStore(storage Storage) *Store {
	s := &Store{
		storage: storage,
		logger:  util.GetLogger(),
	}

	persisted, err := storage.Load()
	if err != nil {
		s.logger.Warn("Failed to restore persisted session", zap.Error(err))
		return s
	}
	if persisted != nil {
		s.token = persisted.Token
		s.principal = persisted.Principal
	}
	return s
}

// Token returns the current bearer credential, empty when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Principal returns the authenticated admin profile, nil when logged out
func (s *Store) Principal() *models.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// IsAuthenticated is derived from credential presence
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Establish stores and persists a fresh session
func (s *Store) Establish(token string, principal *models.Principal) error {
	s.mu.Lock()
	s.token = token
	s.principal = principal
	s.mu.Unlock()

	return s.storage.Save(&State{Token: token, Principal: principal})
}

// Clear wipes the session from memory and persisted storage
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.principal = nil
	s.mu.Unlock()

	return s.storage.Clear()
}
