package llm

import (
	"context"
	"fmt"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// MockGateway is a mock implementation of Gateway for tests and for running
// the server without a backend.
type MockGateway struct {
	Healthy bool
	// Reply overrides the generated response when set.
	Reply string
	// Err is returned by ChatWithContext when set.
	Err error
}

var _ Gateway = (*MockGateway)(nil)

// NewMockGateway creates a healthy mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{Healthy: true}
}

// CheckHealth returns the configured health flag.
func (m *MockGateway) CheckHealth(ctx context.Context) bool {
	return m.Healthy
}

// ChatWithContext echoes the last user message.
func (m *MockGateway) ChatWithContext(ctx context.Context, systemPrompt string, history []domain.Turn) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	var lastUser string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleUser {
			lastUser = history[i].Content
			break
		}
	}
	if lastUser == "" {
		return "[MOCK] Merhaba! Size nasıl yardımcı olabilirim?", nil
	}
	return fmt.Sprintf("[MOCK] %q mesajınızı aldım.", lastUser), nil
}
