package revalidate

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCache struct {
	mu    sync.Mutex
	keys  []string
	kinds []string
}

func (r *recordingCache) Invalidate(keys ...string) {
	r.mu.Lock()
	r.keys = append(r.keys, keys...)
	r.mu.Unlock()
}

func (r *recordingCache) InvalidateKind(kind string) {
	r.mu.Lock()
	r.kinds = append(r.kinds, kind)
	r.mu.Unlock()
}

func (r *recordingCache) snapshot() ([]string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...), append([]string(nil), r.kinds...)
}

func TestAfterInvalidatesImmediatelyAndAtEachDelay(t *testing.T) {
	cache := &recordingCache{}
	s := New(cache, logrus.New(), 10*time.Millisecond, 20*time.Millisecond)
	defer s.Stop()

	s.After("content/c1")

	keys, _ := cache.snapshot()
	assert.Equal(t, []string{"content/c1"}, keys, "one immediate invalidation")

	require.Eventually(t, func() bool {
		keys, _ := cache.snapshot()
		return len(keys) == 3
	}, time.Second, 5*time.Millisecond, "one invalidation per delay")
}

func TestAfterKind(t *testing.T) {
	cache := &recordingCache{}
	s := New(cache, logrus.New(), 10*time.Millisecond)
	defer s.Stop()

	s.AfterKind("content", "stats")

	_, kinds := cache.snapshot()
	assert.Equal(t, []string{"content", "stats"}, kinds)

	require.Eventually(t, func() bool {
		_, kinds := cache.snapshot()
		return len(kinds) == 4
	}, time.Second, 5*time.Millisecond)
}

func TestStopCancelsPendingTimers(t *testing.T) {
	cache := &recordingCache{}
	s := New(cache, logrus.New(), 50*time.Millisecond)

	s.After("persona/p1")
	s.Stop()

	time.Sleep(80 * time.Millisecond)
	keys, _ := cache.snapshot()
	assert.Equal(t, []string{"persona/p1"}, keys, "only the immediate invalidation may run")

	// scheduling after Stop is a no-op beyond the immediate drop
	s.After("persona/p2")
	time.Sleep(80 * time.Millisecond)
	keys, _ = cache.snapshot()
	assert.Equal(t, []string{"persona/p1", "persona/p2"}, keys)
}

func TestPeriodicRejectsBadSpec(t *testing.T) {
	s := New(&recordingCache{}, logrus.New())
	defer s.Stop()

	assert.Error(t, s.Periodic("not a cron spec", "stats"))
	assert.NoError(t, s.Periodic("@every 1m", "stats"))
}
