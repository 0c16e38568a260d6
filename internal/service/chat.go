package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ewasteheroes/carbobot/internal/adapter/llm"
	"github.com/ewasteheroes/carbobot/internal/domain"
	"github.com/ewasteheroes/carbobot/internal/policy"
	"github.com/ewasteheroes/carbobot/internal/prompt"
	"github.com/ewasteheroes/carbobot/internal/transcript"
)

// User-facing apologies. Every failure path resolves to one of these; the
// serving process never surfaces an error for a chat message.
const (
	ConnectionApology = "Ollama servisi şu anda kullanılamıyor. Lütfen daha sonra tekrar deneyin."
	GenericApology    = "Bir hata oluştu. Lütfen tekrar deneyin."
)

// actionThreshold is the minimum confidence for executing a local action.
const actionThreshold = 0.5

// Result is the outcome of one processed message.
type Result struct {
	Reply       string
	Recognition domain.RecognitionResult
	Source      domain.ReplySource
}

// Chat processes one incoming message for a session and always produces a
// reply. Messages for the same session are serialized; different sessions
// proceed independently.
func (s *Service) Chat(ctx context.Context, sessionID, message string, surface domain.Surface) Result {
	lock := s.locks.get(sessionID)
	lock.Lock()
	defer lock.Unlock()

	exchangeID := "chat_" + uuid.New().String()[:8]
	logger := s.logger.With(
		zap.String("exchange_id", exchangeID),
		zap.String("session_id", sessionID),
	)

	// The user turn goes into history before classification so the model
	// sees the current message.
	userTurn := domain.Turn{Role: domain.RoleUser, Content: strings.TrimSpace(message)}
	if err := s.store.Append(ctx, sessionID, userTurn); err != nil {
		logger.Warn("failed to append user turn", zap.Error(err))
	}

	recognition := s.recognizer.Recognize(message)
	s.metrics.ObserveMessage(recognition.Intent)
	logger.Info("intent recognized",
		zap.String("intent", recognition.Intent),
		zap.Float64("confidence", recognition.Confidence),
		zap.String("action", string(recognition.Action)),
	)

	reply, source := s.resolve(ctx, logger, sessionID, message, recognition, surface)

	if err := s.store.Append(ctx, sessionID, domain.Turn{Role: domain.RoleAssistant, Content: reply}); err != nil {
		logger.Warn("failed to append assistant turn", zap.Error(err))
	}

	s.metrics.ObserveReply(string(source))
	s.record(ctx, logger, exchangeID, sessionID, recognition, source)

	return Result{Reply: reply, Recognition: recognition, Source: source}
}

// resolve picks the reply: a short-circuiting local action when confidence
// is high enough and the policy allows it, otherwise the inference backend.
func (s *Service) resolve(ctx context.Context, logger *zap.Logger, sessionID, message string, recognition domain.RecognitionResult, surface domain.Surface) (string, domain.ReplySource) {
	if recognition.Confidence > actionThreshold && recognition.Action != domain.ActionNone && s.actionAllowed(ctx, logger, recognition, surface) {
		if res := s.actions.Execute(ctx, recognition.Action, message); res != nil && res.ShortCircuit {
			return res.Message, domain.ReplySourceAction
		}
	}

	return s.infer(ctx, logger, sessionID, recognition, surface)
}

func (s *Service) actionAllowed(ctx context.Context, logger *zap.Logger, recognition domain.RecognitionResult, surface domain.Surface) bool {
	if s.policy == nil {
		return true
	}

	decision, err := s.policy.Evaluate(ctx, recognition.Action, surface, recognition.Confidence)
	if err != nil {
		logger.Warn("policy evaluation failed, allowing action", zap.Error(err))
		return true
	}
	if decision == policy.DecisionDeny {
		logger.Info("action denied by policy", zap.String("action", string(recognition.Action)))
		return false
	}
	return true
}

func (s *Service) infer(ctx context.Context, logger *zap.Logger, sessionID string, recognition domain.RecognitionResult, surface domain.Surface) (string, domain.ReplySource) {
	history, err := s.store.History(ctx, sessionID)
	if err != nil {
		logger.Error("failed to load history", zap.Error(err))
		return GenericApology, domain.ReplySourceApology
	}

	systemPrompt := prompt.BuildFullPrompt(domain.PromptContext{
		Surface:    surface,
		LastIntent: recognition.Intent,
		LastAction: recognition.Action,
	})

	start := time.Now()
	reply, err := s.gateway.ChatWithContext(ctx, systemPrompt, history)
	s.metrics.ObserveInference(time.Since(start).Seconds())

	if err != nil {
		if llm.IsConnectionError(err) {
			logger.Warn("inference backend unreachable", zap.Error(err))
			return ConnectionApology, domain.ReplySourceApology
		}
		logger.Error("inference failed", zap.Error(err))
		return GenericApology, domain.ReplySourceApology
	}

	return reply, domain.ReplySourceLLM
}

// record writes the exchange to the transcript store. Best-effort.
func (s *Service) record(ctx context.Context, logger *zap.Logger, exchangeID, sessionID string, recognition domain.RecognitionResult, source domain.ReplySource) {
	if s.transcript == nil {
		return
	}

	err := s.transcript.Record(ctx, transcript.Entry{
		ExchangeID: exchangeID,
		SessionID:  sessionID,
		Intent:     recognition.Intent,
		Confidence: recognition.Confidence,
		Action:     recognition.Action,
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to record transcript entry", zap.Error(err))
	}
}

// History returns the session's conversation history.
func (s *Service) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	return s.store.History(ctx, sessionID)
}

// ClearHistory removes the session's conversation history. Clearing a
// missing session is a no-op.
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}
