// Package store defines the conversation store interface and its backends.
package store

import (
	"context"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// ConversationStore holds per-session, size-bounded conversation history.
// Sessions are created lazily on first append and removed only by Clear.
// Implementations must be safe for concurrent use.
type ConversationStore interface {
	// Append adds a turn to the session, creating it if absent, then trims
	// the history to the configured bound.
	Append(ctx context.Context, sessionID string, turn domain.Turn) error

	// History returns the session's turns in order. A missing session
	// yields an empty slice, not an error.
	History(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// Clear removes the session entirely. Clearing a missing session is a
	// no-op.
	Clear(ctx context.Context, sessionID string) error
}

// MaxTurns converts a max-history exchange count into the turn cap: one
// exchange is a user turn plus an assistant turn.
func MaxTurns(maxHistory int) int {
	return 2 * maxHistory
}
