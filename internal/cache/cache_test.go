// AngelaMos | 2026
// cache_test.go

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))

	now = now.Add(2 * time.Second)
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNoop_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Noop

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedis_RoundTrip(t *testing.T) {
	url := os.Getenv("CMS_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: CMS_TEST_REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	c := NewRedis(client, "cms-test:", time.Minute)

	require.NoError(t, c.Set(ctx, "settings:home", []byte(`{"a":1}`), 0))

	got, err := c.Get(ctx, "settings:home")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, c.Delete(ctx, "settings:home"))
	_, err = c.Get(ctx, "settings:home")
	assert.ErrorIs(t, err, ErrCacheMiss)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
}
