package store

import (
	"context"
	"sync"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// MemoryStore is the default in-memory conversation store. History is
// ephemeral: lost on restart, by design.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]domain.Turn
	maxTurns int
}

var _ ConversationStore = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store capped at 2*maxHistory turns
// per session.
func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]domain.Turn),
		maxTurns: MaxTurns(maxHistory),
	}
}

// Append adds a turn and re-applies the trim bound.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[sessionID], turn)
	if len(turns) > s.maxTurns {
		trimmed := make([]domain.Turn, s.maxTurns)
		copy(trimmed, turns[len(turns)-s.maxTurns:])
		turns = trimmed
	}
	s.sessions[sessionID] = turns

	return nil
}

// History returns a copy of the session's turns.
func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Clear removes the session.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
