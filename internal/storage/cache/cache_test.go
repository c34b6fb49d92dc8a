package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func TestCache_GetOrCreate(t *testing.T) {
	t.Parallel()

	c := NewCache[*int](time.Hour, nil)
	calls := 0
	create := func() *int {
		calls++
		v := calls
		return &v
	}

	first := c.GetOrCreate(1, create)
	second := c.GetOrCreate(1, create)
	other := c.GetOrCreate(2, create)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, c.Len())
}

func TestCache_SetGetDelete(t *testing.T) {
	t.Parallel()

	var evicted []int64
	c := NewCache[string](time.Hour, func(userID int64, _ string) {
		evicted = append(evicted, userID)
	})

	_, ok := c.Get(7)
	assert.False(t, ok)

	c.Set(7, "workspace")
	v, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, "workspace", v)

	c.Delete(7)
	_, ok = c.Get(7)
	assert.False(t, ok)
	assert.Equal(t, []int64{7}, evicted)

	c.Delete(7)
	assert.Equal(t, []int64{7}, evicted, "deleting a missing entry does not call onEvict")
}

func TestCache_Cleanup(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	evicted := map[int64]string{}
	c := NewCache[string](30*time.Minute, func(userID int64, v string) {
		evicted[userID] = v
	})
	c.now = clock.Now

	c.Set(1, "idle")
	c.Set(2, "active")

	clock.Advance(20 * time.Minute)
	_, _ = c.Get(2)

	clock.Advance(15 * time.Minute)
	removed := c.Cleanup()

	assert.Equal(t, 1, removed)
	assert.Equal(t, map[int64]string{1: "idle"}, evicted)

	_, ok := c.Get(2)
	assert.True(t, ok)
}
