package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"focus-assistant/api/internal/assistant"
	"focus-assistant/api/internal/config"
	"focus-assistant/api/internal/httpserver"
	"focus-assistant/api/internal/llm/gemini"
	"focus-assistant/api/internal/logger"
	"focus-assistant/api/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
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

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		lg.Fatal("telegram", zap.Error(err))
	}
	bot.Debug = false

	r := &telegram.Router{
		Bot: bot,
		Svc: assistant.New(engine, lg, cfg.ModelTimeout),
		Log: lg,
	}

	// health + metrics only; the bot itself long-polls
	srv := httpserver.New(cfg.Addr(), httpserver.Wrap(httpserver.NewMux("ok"), cfg.AllowedOrigins, lg), cfg.ModelTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpserver.Run(gctx, srv, lg) })
	g.Go(func() error {
		lg.Info("telegram polling", zap.String("bot", bot.Self.UserName), zap.String("model", engine.GetModel()))
		err := telegram.RunPolling(gctx, bot, lg, r.HandleUpdate)
		stop()
		return err
	})
	if err := g.Wait(); err != nil {
		lg.Fatal("bot stopped", zap.Error(err))
	}
}
