// Package llm provides the client for the chat-completion inference backend.
package llm

import (
	"context"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// Gateway defines the interface for inference backend operations.
type Gateway interface {
	// CheckHealth reports whether the backend is reachable and the
	// configured model is available. It never returns an error.
	CheckHealth(ctx context.Context) bool

	// ChatWithContext sends the system prompt plus the full history and
	// returns the assistant text. Failures are classified as
	// *ConnectionError or *InferenceError.
	ChatWithContext(ctx context.Context, systemPrompt string, history []domain.Turn) (string, error)
}

// Ensure Client implements Gateway.
var _ Gateway = (*Client)(nil)
