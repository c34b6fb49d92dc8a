package session

import (
	"sync"

	"github.com/DanRulev/wordtrainer/internal/models"
)

// Store holds the credential of one chat session. It is never persisted.
type Store struct {
	mu   sync.Mutex
	cred models.Credential
	set  bool
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(cred models.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	s.set = cred.Valid()
}

func (s *Store) Get() (models.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return models.Credential{}, false
	}
	return s.cred, true
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = models.Credential{}
	s.set = false
}
