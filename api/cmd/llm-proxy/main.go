package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"focus-assistant/api/internal/assistant"
	"focus-assistant/api/internal/config"
	"focus-assistant/api/internal/handle"
	"focus-assistant/api/internal/httpserver"
	"focus-assistant/api/internal/llm/gemini"
	"focus-assistant/api/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		lg.Fatal("gemini client", zap.Error(err))
	}
	defer func() { _ = engine.Close() }()

	svc := assistant.New(engine, lg, cfg.ModelTimeout)

	mux := httpserver.NewMux("ok")
	handle.New(svc, lg).Register(mux)

	srv := httpserver.New(cfg.Addr(), httpserver.Wrap(mux, cfg.AllowedOrigins, lg), cfg.ModelTimeout)
	lg.Info("llm-proxy starting",
		zap.String("addr", srv.Addr),
		zap.String("engine", engine.Name()),
		zap.String("model", engine.GetModel()),
		zap.Duration("model_timeout", cfg.ModelTimeout),
	)
	if err := httpserver.Run(ctx, srv, lg); err != nil {
		lg.Fatal("http server", zap.Error(err))
	}
}
