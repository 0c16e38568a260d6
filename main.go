package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ewasteheroes/carbobot/internal/action"
	"github.com/ewasteheroes/carbobot/internal/adapter/llm"
	"github.com/ewasteheroes/carbobot/internal/adapter/waste"
	"github.com/ewasteheroes/carbobot/internal/config"
	"github.com/ewasteheroes/carbobot/internal/intent"
	"github.com/ewasteheroes/carbobot/internal/metrics"
	"github.com/ewasteheroes/carbobot/internal/policy"
	"github.com/ewasteheroes/carbobot/internal/service"
	"github.com/ewasteheroes/carbobot/internal/store"
	"github.com/ewasteheroes/carbobot/internal/transcript"
	handler "github.com/ewasteheroes/carbobot/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting carbobot",
		zap.Int("port", cfg.Port),
		zap.String("ollama_url", cfg.OllamaURL),
		zap.String("model", cfg.OllamaModel),
		zap.String("waste_service_url", cfg.WasteServiceURL),
	)

	// Conversation store: Redis when configured, in-memory otherwise.
	var conversations store.ConversationStore
	if cfg.RedisAddr != "" {
		conversations = store.NewRedisStore(cfg.RedisAddr, cfg.MaxHistory)
		logger.Info("using redis conversation store", zap.String("addr", cfg.RedisAddr))
	} else {
		conversations = store.NewMemoryStore(cfg.MaxHistory)
	}

	// Transcript store. Optional: an empty TRANSCRIPT_DB disables auditing.
	var audit *transcript.Store
	if cfg.TranscriptDB != "" {
		audit, err = transcript.New(cfg.TranscriptDB)
		if err != nil {
			logger.Fatal("failed to open transcript store", zap.Error(err))
		}
		defer audit.Close()
	}

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		logger.Fatal("failed to initialize policy engine", zap.Error(err))
	}

	gateway := llm.NewGateway(cfg.OllamaURL, cfg.OllamaModel, cfg.OllamaAPIKey)
	actions := action.NewHandler(waste.NewClient(cfg.WasteServiceURL), logger)
	m := metrics.New()

	svc := service.New(
		conversations,
		intent.NewRecognizer(intent.DefaultCatalog()),
		actions,
		gateway,
		policyEngine,
		audit,
		m,
		logger,
	)

	// Probe the inference backend. Startup continues regardless; chat
	// degrades to apologies until the backend comes up.
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if svc.CheckBackend(probeCtx) {
		logger.Info("inference backend reachable", zap.String("model", cfg.OllamaModel))
	} else {
		logger.Warn("inference backend unreachable at startup", zap.String("url", cfg.OllamaURL))
	}
	cancel()

	e := handler.NewServer(svc, m, cfg.OllamaModel)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("carbobot listening", zap.Int("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server gracefully", zap.Error(err))
	}

	logger.Info("carbobot stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
