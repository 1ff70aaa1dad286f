package main

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/catalog"
	"github.com/bocado-labs/consulta-engine/pkg/config"
	"github.com/bocado-labs/consulta-engine/pkg/executor"
	"github.com/bocado-labs/consulta-engine/pkg/handlers"
	"github.com/bocado-labs/consulta-engine/pkg/llm"
	"github.com/bocado-labs/consulta-engine/pkg/matcher"
	"github.com/bocado-labs/consulta-engine/pkg/middleware"
	"github.com/bocado-labs/consulta-engine/pkg/observability"
	"github.com/bocado-labs/consulta-engine/pkg/retry"
	"github.com/bocado-labs/consulta-engine/pkg/services"
	"github.com/bocado-labs/consulta-engine/pkg/snapshot"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("engine", cfg.Engine),
		zap.String("snapshot_path", cfg.Snapshot.Path),
	)

	snap := snapshot.New(cfg.Snapshot.Path, logger)
	if err := snap.Bootstrap(context.Background()); err != nil {
		logger.Fatal("failed to bootstrap snapshot", zap.Error(err))
	}

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("failed to load query catalog", zap.Error(err))
	}

	exec := executor.New(snapshot.Driver, snap.DSN(), cfg.Snapshot.QueryTimeout(), logger)

	var answerService services.AnswerService
	switch cfg.Engine {
	case config.EngineLLM:
		retryCfg := retry.DefaultConfig()
		retryCfg.MaxRetries = cfg.LLM.MaxRetries
		client, err := llm.NewClient(&llm.Config{
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Timeout:     cfg.LLM.Timeout(),
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			RetryConfig: retryCfg,
		}, logger)
		if err != nil {
			logger.Fatal("failed to create LLM client", zap.Error(err))
		}
		answerService = services.NewLLMService(client, exec, logger)
	default:
		m := matcher.New(cat, cfg.Matcher.Threshold, logger)
		answerService = services.NewKeywordService(m, exec, logger)
	}

	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewConsultaHandler(answerService, cat, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", observability.Handler())

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("starting consulta-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
	)
	if err := http.ListenAndServe(addr, middleware.RequestLogger(logger)(mux)); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// newLogger builds a development logger locally and a production logger
// everywhere else.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
