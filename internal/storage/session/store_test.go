package session

import (
	"sync"
	"testing"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	t.Parallel()

	s := NewStore()

	_, ok := s.Get()
	assert.False(t, ok, "new store must be empty")

	cred := models.Credential{Authorization: "Basic dXNlcjpwYXNz", Email: "user@example.com"}
	s.Set(cred)

	got, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, cred, got)

	s.Clear()
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestStore_SetEmptyCredential(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Set(models.Credential{Email: "user@example.com"})

	_, ok := s.Get()
	assert.False(t, ok, "credential without authorization value is not a session")
}

func TestStore_Concurrent(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(models.Credential{Authorization: "Basic x", Email: "a@b.c"})
		}()
		go func() {
			defer wg.Done()
			s.Get()
			s.Clear()
		}()
	}
	wg.Wait()
}
