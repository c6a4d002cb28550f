package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})

	s.Set(ctx, "k", 42, 0)
	v, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	s.Delete(ctx, "k")
	_, ok = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestStoreNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	root := NewStore(Options{Prefix: "modal"})
	view := root.Namespace("view")
	edit := root.Namespace(":edit:")

	view.Set(ctx, "data", "a", NoExpiration)
	edit.Set(ctx, "data", "b", NoExpiration)

	v, _ := view.Get(ctx, "data")
	e, _ := edit.Get(ctx, "data")
	assert.Equal(t, "a", v)
	assert.Equal(t, "b", e)

	raw, ok := root.Get(ctx, "view:data")
	assert.True(t, ok)
	assert.Equal(t, "a", raw)
}

func TestStoreNoExpirationHasNoTTL(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})

	s.Set(ctx, "k", "v", NoExpiration)
	_, ok := s.TTL(ctx, "k")
	assert.False(t, ok)
}

func TestStoreExpire(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})

	assert.False(t, s.Expire(ctx, "missing", time.Second))

	s.Set(ctx, "k", "v", NoExpiration)
	assert.True(t, s.Expire(ctx, "k", 20*time.Millisecond))

	ttl, ok := s.TTL(ctx, "k")
	assert.True(t, ok)
	assert.LessOrEqual(t, ttl, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, ok := s.Get(ctx, "k")
		return !ok
	}, time.Second, 5*time.Millisecond)
}
