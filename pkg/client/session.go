package client

import "sync"

// User is the account summary the API returns.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SessionStore persists the bearer token and user profile between calls,
// the way a browser keeps them for the lifetime of a session.
type SessionStore interface {
	Token() string
	User() *User
	Set(token string, user *User)
	Clear()
}

// MemorySessionStore is the default SessionStore, safe for concurrent use.
type MemorySessionStore struct {
	mu    sync.RWMutex
	token string
	user  *User
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySessionStore) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *MemorySessionStore) Set(token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		u := *user
		s.user = &u
	} else {
		s.user = nil
	}
}

func (s *MemorySessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}
