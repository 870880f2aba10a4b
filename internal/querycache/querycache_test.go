package querycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "personas", Key("personas"))
	assert.Equal(t, "persona/p1", Key("persona", "p1"))
	assert.Equal(t, "accounts/p1/a2", Key("accounts", "p1", "a2"))
}

func TestGetSetAndTTL(t *testing.T) {
	c := New(50 * time.Millisecond)
	defer c.Close()

	_, ok := c.Get("persona/p1")
	assert.False(t, ok)

	c.Set("persona/p1", "v")
	v, ok := c.Get("persona/p1")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.Get("persona/p1")
	assert.False(t, ok, "entry must go stale after the TTL")
}

func TestInvalidate(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("persona/p1", 1)
	c.Set("persona/p2", 2)
	c.Invalidate("persona/p1")

	_, ok := c.Get("persona/p1")
	assert.False(t, ok)
	_, ok = c.Get("persona/p2")
	assert.True(t, ok)
}

func TestInvalidateKind(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("content", []string{"list"})
	c.Set("content/c1", 1)
	c.Set("contentqueue/p1", 2)

	c.InvalidateKind("content")

	_, ok := c.Get("content")
	assert.False(t, ok)
	_, ok = c.Get("content/c1")
	assert.False(t, ok)
	_, ok = c.Get("contentqueue/p1")
	assert.True(t, ok, "other kinds must survive")
}

func TestThroughFetchesOnceWhileFresh(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		return "fetched", nil
	}

	v, err := Through(context.Background(), c, "persona/p1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)

	v, err = Through(context.Background(), c, "persona/p1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)
	assert.Equal(t, 1, calls)
}

func TestThroughDoesNotCacheErrors(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	boom := errors.New("backend down")
	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return 0, boom
	}

	_, err := Through(context.Background(), c, "stats", fetch)
	assert.ErrorIs(t, err, boom)
	_, err = Through(context.Background(), c, "stats", fetch)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}
