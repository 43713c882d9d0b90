// Package session holds the in-memory login state: the access token handed
// out by the auth endpoints and the signed-in user's identity. The store is
// the token source for every authenticated request.
package session

import (
	"sync"

	"innsync/shared/constant"
)

type Store struct {
	mu    sync.RWMutex
	token string
	email string
	name  string
}

func NewStore() *Store {
	return &Store{}
}

// Token returns the current access token, or the empty string when signed
// out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Store) Set(token, email, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.email = email
	s.name = name
}

func (s *Store) User() (email, name string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.email, s.name
}

func (s *Store) Active() bool {
	return s.Token() != constant.Empty
}

func (s *Store) Clear() {
	s.Set(constant.Empty, constant.Empty, constant.Empty)
}
