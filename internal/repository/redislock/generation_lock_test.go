package redislock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestGenerationLock_AcquireRelease(t *testing.T) {
	mr, rdb := setupRedis(t)
	lock := NewGenerationLock(rdb, time.Minute)
	ctx := context.Background()

	token, ok, err := lock.Acquire(ctx, "story-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists(keyPrefix+"story-1"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"story-1"))

	_, ok, err = lock.Acquire(ctx, "story-1")
	require.NoError(t, err)
	assert.False(t, ok)

	lock.Release(ctx, "story-1", token)
	assert.False(t, mr.Exists(keyPrefix+"story-1"))

	_, ok, err = lock.Acquire(ctx, "story-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerationLock_StaleReleaseKeepsNewHolder(t *testing.T) {
	mr, rdb := setupRedis(t)
	lock := NewGenerationLock(rdb, time.Minute)
	ctx := context.Background()

	stale, ok, err := lock.Acquire(ctx, "story")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	current, ok, err := lock.Acquire(ctx, "story")
	require.NoError(t, err)
	require.True(t, ok)

	lock.Release(ctx, "story", stale)
	assert.True(t, mr.Exists(keyPrefix+"story"), "an expired holder must not delete the new holder's key")

	lock.Release(ctx, "story", current)
	assert.False(t, mr.Exists(keyPrefix+"story"))
}

func TestGenerationLock_RedisDown(t *testing.T) {
	mr, rdb := setupRedis(t)
	lock := NewGenerationLock(rdb, time.Minute)
	mr.Close()

	_, ok, err := lock.Acquire(context.Background(), "story")
	assert.Error(t, err)
	assert.False(t, ok)
}
