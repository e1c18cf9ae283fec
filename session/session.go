// Package session holds the challenger token for one scenario run.
package session

import "sync"

// Store holds zero or one challenger token. Every resource client of a scenario shares the same
// Store, so a token stored by one of them is sent by all of them. Concurrent scenarios must each
// have their own Store.
type Store struct {
	token string
	set   bool
	lock  sync.Mutex
}

func NewStore() *Store {
	return &Store{}
}

// Get returns the current token, and false if there is none.
func (s *Store) Get() (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.token, s.set
}

// Set replaces the current token.
func (s *Store) Set(token string) {
	s.lock.Lock()
	s.token = token
	s.set = true
	s.lock.Unlock()
}

// Clear discards the current token, so that later requests are unauthenticated.
func (s *Store) Clear() {
	s.lock.Lock()
	s.token = ""
	s.set = false
	s.lock.Unlock()
}
