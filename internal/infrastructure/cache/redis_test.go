package cache

import (
	"context"
	"testing"
	"time"

	"skill-insight/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachable() config.RedisConfig {
	return config.RedisConfig{Host: "127.0.0.1", Port: "1", TTL: time.Minute}
}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisWithClient(client, time.Minute, nil)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedis_UnavailableBypasses(t *testing.T) {
	r := NewRedis(unreachable(), nil)
	ctx := context.Background()

	assert.Error(t, r.Ping(ctx))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "views:x", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.SetJSON(ctx, "views:x", map[string]int{"a": 1}, 0))
	n, err := r.PurgeStale(ctx, "views:*", "views:abc:")
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis

	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.SetJSON(context.Background(), "k", 1, time.Second))
}

func TestRedis_RoundTrip(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Ping(ctx))
	require.NoError(t, r.SetJSON(ctx, "views:fp:a", map[string]int{"python": 2}, 0))
	assert.Equal(t, time.Minute, mr.TTL("views:fp:a"))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "views:fp:a", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, map[string]int{"python": 2}, out)

	hit, err = r.GetJSON(ctx, "views:fp:missing", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_PurgeStaleKeepsCurrentPrefix(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("views:old:a", "{}"))
	require.NoError(t, mr.Set("views:old:b", "{}"))
	require.NoError(t, mr.Set("views:cur:a", "{}"))
	require.NoError(t, mr.Set("sessions:1", "{}"))

	n, err := r.PurgeStale(ctx, "views:*", "views:cur:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.False(t, mr.Exists("views:old:a"))
	assert.False(t, mr.Exists("views:old:b"))
	assert.True(t, mr.Exists("views:cur:a"))
	assert.True(t, mr.Exists("sessions:1"))
}
