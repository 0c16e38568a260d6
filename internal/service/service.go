// Package service implements the per-message dialogue orchestration.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ewasteheroes/carbobot/internal/action"
	"github.com/ewasteheroes/carbobot/internal/adapter/llm"
	"github.com/ewasteheroes/carbobot/internal/intent"
	"github.com/ewasteheroes/carbobot/internal/metrics"
	"github.com/ewasteheroes/carbobot/internal/policy"
	"github.com/ewasteheroes/carbobot/internal/store"
	"github.com/ewasteheroes/carbobot/internal/transcript"
)

// Service orchestrates intent recognition, local actions, and inference for
// incoming messages.
type Service struct {
	store      store.ConversationStore
	recognizer *intent.Recognizer
	actions    *action.Handler
	gateway    llm.Gateway
	policy     *policy.Engine
	transcript *transcript.Store
	metrics    *metrics.Metrics
	logger     *zap.Logger

	locks sessionLocks
}

// New creates the orchestrator. policyEngine, transcriptStore, m, and logger
// may be nil.
func New(
	conversations store.ConversationStore,
	recognizer *intent.Recognizer,
	actions *action.Handler,
	gateway llm.Gateway,
	policyEngine *policy.Engine,
	transcriptStore *transcript.Store,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      conversations,
		recognizer: recognizer,
		actions:    actions,
		gateway:    gateway,
		policy:     policyEngine,
		transcript: transcriptStore,
		metrics:    m,
		logger:     logger,
	}
}

// CheckBackend probes the inference backend. Used at startup and by the CLI.
func (s *Service) CheckBackend(ctx context.Context) bool {
	return s.gateway.CheckHealth(ctx)
}
