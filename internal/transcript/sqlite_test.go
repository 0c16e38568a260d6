package transcript

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestRecordAndQuery(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ExchangeID: "e1", SessionID: "s1", Intent: "GREETING", Confidence: 0.6, Action: domain.ActionGreet, Source: domain.ReplySourceAction, CreatedAt: base},
		{ExchangeID: "e2", SessionID: "s1", Intent: "GENERAL", Confidence: 0.5, Action: domain.ActionChat, Source: domain.ReplySourceLLM, CreatedAt: base.Add(time.Minute)},
		{ExchangeID: "e3", SessionID: "s2", Intent: "GENERAL", Confidence: 0.5, Action: domain.ActionChat, Source: domain.ReplySourceApology, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Record(ctx, e))
	}

	got, err := s.BySession(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ExchangeID)
	assert.Equal(t, domain.ReplySourceAction, got[0].Source)
	assert.Equal(t, "e2", got[1].ExchangeID)
	assert.Equal(t, 0.5, got[1].Confidence)
}

func TestBySessionLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Entry{
			ExchangeID: string(rune('a' + i)),
			SessionID:  "s1",
			Intent:     "GENERAL",
			Confidence: 0.5,
			Source:     domain.ReplySourceLLM,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := s.BySession(ctx, "s1", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestBySessionEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.BySession(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDuplicateExchangeIDRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e := Entry{ExchangeID: "dup", SessionID: "s1", Intent: "GENERAL", Confidence: 0.5, Source: domain.ReplySourceLLM, CreatedAt: time.Now()}
	require.NoError(t, s.Record(ctx, e))
	assert.Error(t, s.Record(ctx, e))
}
