package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAsideMissLoadsAndCaches(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	loads := 0
	var dest cachedThing
	err := Aside(ctx, "thing:1", &dest, time.Minute, func() error {
		loads++
		dest = cachedThing{Name: "first", Count: 3}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
	assert.True(t, mr.Exists("thing:1"))

	// Second call is served from cache.
	var again cachedThing
	err = Aside(ctx, "thing:1", &again, time.Minute, func() error {
		loads++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
	assert.Equal(t, cachedThing{Name: "first", Count: 3}, again)
}

func TestAsideExpiredEntryReloads(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	var dest cachedThing
	require.NoError(t, Aside(ctx, "thing:2", &dest, time.Minute, func() error {
		dest = cachedThing{Name: "v1"}
		return nil
	}))

	mr.FastForward(2 * time.Minute)

	var after cachedThing
	require.NoError(t, Aside(ctx, "thing:2", &after, time.Minute, func() error {
		after = cachedThing{Name: "v2"}
		return nil
	}))
	assert.Equal(t, "v2", after.Name)
}

func TestAsideCorruptEntryFallsThroughToLoader(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("thing:3", "{not json"))

	var dest cachedThing
	require.NoError(t, Aside(ctx, "thing:3", &dest, time.Minute, func() error {
		dest = cachedThing{Name: "reloaded"}
		return nil
	}))
	assert.Equal(t, "reloaded", dest.Name)

	// The corrupt entry was replaced with the fresh value.
	raw, err := mr.Get("thing:3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"reloaded","count":0}`, raw)
}

func TestAsideWithoutClientCallsLoaderEveryTime(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	loads := 0
	var dest cachedThing
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, "thing:4", &dest, time.Minute, func() error {
			loads++
			return nil
		}))
	}
	assert.Equal(t, 2, loads)
}

func TestInvalidateMentorProfile(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(MentorProfileKey(7), `{"id":7}`))
	InvalidateMentorProfile(ctx, 7)
	assert.False(t, mr.Exists(MentorProfileKey(7)))

	// No client: a no-op, not a panic.
	SetClient(nil)
	InvalidateMentorProfile(ctx, 7)
}
