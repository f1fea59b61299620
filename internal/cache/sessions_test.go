package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestSessionRoundTrip(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	StoreSession(ctx, "tok-abc", 42)
	assert.Equal(t, uint(42), LookupSession(ctx, "tok-abc"))

	// Sessions expire with the token lifetime.
	mr.FastForward(SessionTTL)
	assert.Equal(t, uint(0), LookupSession(ctx, "tok-abc"))
}

func TestDropSession(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	StoreSession(ctx, "tok-gone", 7)
	DropSession(ctx, "tok-gone")
	assert.Equal(t, uint(0), LookupSession(ctx, "tok-gone"))
}

func TestSessionsFailOpenWithoutRedis(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	// None of these should panic or error without a client.
	StoreSession(ctx, "tok", 1)
	DropSession(ctx, "tok")
	assert.Equal(t, uint(0), LookupSession(ctx, "tok"))
}

func TestLookupSessionIgnoresGarbage(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	mr.Set(SessionKey("tok-bad"), "not-a-number")
	assert.Equal(t, uint(0), LookupSession(ctx, "tok-bad"))
}
