package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofirgaash1/engsub/internal/config"
)

func TestCueKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cues:abc123", cueKey("abc123"))
}

// With an empty address the cache is disabled: construction succeeds without
// a server and every operation is a safe no-op.
func TestCueCache_Disabled(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache, err := NewCueCache(context.Background(), config.RedisConfig{Addr: ""}, logger)
	require.NoError(t, err)

	ctx := context.Background()

	cues, ok := cache.Get(ctx, "deadbeef")
	assert.False(t, ok)
	assert.Nil(t, cues)

	cache.Set(ctx, "deadbeef", nil)
	cache.Invalidate(ctx, "deadbeef")

	assert.NoError(t, cache.Ping(ctx))
	assert.NoError(t, cache.Close())
}
