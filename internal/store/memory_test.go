package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

func userTurn(i int) domain.Turn {
	return domain.Turn{Role: domain.RoleUser, Content: fmt.Sprintf("msg-%d", i)}
}

func TestMemoryStoreAppendAndHistory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	require.NoError(t, s.Append(ctx, "s1", domain.Turn{Role: domain.RoleUser, Content: "merhaba"}))
	require.NoError(t, s.Append(ctx, "s1", domain.Turn{Role: domain.RoleAssistant, Content: "selam"}))

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "selam", history[1].Content)
}

func TestMemoryStoreMissingSessionEmpty(t *testing.T) {
	s := NewMemoryStore(10)

	history, err := s.History(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}

func TestMemoryStoreTrim(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	// 2*MAX_HISTORY + k appends leave exactly 2*MAX_HISTORY turns, newest
	// first dropped.
	for i := 0; i < 25; i++ {
		require.NoError(t, s.Append(ctx, "s1", userTurn(i)))
	}

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 20)
	assert.Equal(t, "msg-5", history[0].Content)
	assert.Equal(t, "msg-24", history[19].Content)
}

func TestMemoryStoreTrimReappliedEveryAppend(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(1)

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Append(ctx, "s1", userTurn(i)))
		history, err := s.History(ctx, "s1")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(history), 2)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	require.NoError(t, s.Append(ctx, "s1", userTurn(0)))
	require.NoError(t, s.Clear(ctx, "s1"))

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	// Clearing a missing session is a no-op, not an error.
	assert.NoError(t, s.Clear(ctx, "never-existed"))
}

func TestMemoryStoreSessionsIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)

	require.NoError(t, s.Append(ctx, "a", domain.Turn{Role: domain.RoleUser, Content: "for-a"}))
	require.NoError(t, s.Append(ctx, "b", domain.Turn{Role: domain.RoleUser, Content: "for-b"}))
	require.NoError(t, s.Clear(ctx, "a"))

	historyB, err := s.History(ctx, "b")
	require.NoError(t, err)
	require.Len(t, historyB, 1)
	assert.Equal(t, "for-b", historyB[0].Content)
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(1000)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = s.Append(ctx, fmt.Sprintf("s%d", g%2), userTurn(i))
			}
		}(g)
	}
	wg.Wait()

	for _, id := range []string{"s0", "s1"} {
		history, err := s.History(ctx, id)
		require.NoError(t, err)
		assert.Len(t, history, 200)
	}
}

func TestMemoryStoreHistoryIsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10)
	require.NoError(t, s.Append(ctx, "s1", userTurn(0)))

	history, err := s.History(ctx, "s1")
	require.NoError(t, err)
	history[0].Content = "mutated"

	fresh, err := s.History(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "msg-0", fresh[0].Content)
}
