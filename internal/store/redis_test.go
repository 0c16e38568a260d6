package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

func newTestRedisStore(t *testing.T, maxHistory int) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStoreFromClient(client, maxHistory)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 10)

	require.NoError(t, s.Append(ctx, "s1", domain.Turn{Role: domain.RoleUser, Content: "merhaba"}))
	require.NoError(t, s.Append(ctx, "s1", domain.Turn{Role: domain.RoleAssistant, Content: "selam"}))

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.Turn{Role: domain.RoleUser, Content: "merhaba"}, history[0])
	assert.Equal(t, domain.Turn{Role: domain.RoleAssistant, Content: "selam"}, history[1])
}

func TestRedisStoreTrim(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 10)

	for i := 0; i < 25; i++ {
		require.NoError(t, s.Append(ctx, "s1", userTurn(i)))
	}

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 20)
	assert.Equal(t, "msg-5", history[0].Content)
	assert.Equal(t, "msg-24", history[19].Content)
}

func TestRedisStoreClear(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t, 10)

	require.NoError(t, s.Append(ctx, "s1", userTurn(0)))
	require.NoError(t, s.Clear(ctx, "s1"))

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	assert.NoError(t, s.Clear(ctx, "never-existed"))
}

func TestRedisStoreMissingSessionEmpty(t *testing.T) {
	s := newTestRedisStore(t, 10)

	history, err := s.History(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, history)
}
