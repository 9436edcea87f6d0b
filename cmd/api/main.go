package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"conversational-support-assistant/config"
	_ "conversational-support-assistant/docs" // Swagger docs
	tgDelivery "conversational-support-assistant/internal/assistant/delivery/telegram"
	"conversational-support-assistant/internal/assistant/usecase"
	"conversational-support-assistant/internal/handler/generic"
	"conversational-support-assistant/internal/handler/product"
	"conversational-support-assistant/internal/httpserver"
	"conversational-support-assistant/internal/orchestrator"
	"conversational-support-assistant/internal/router"
	"conversational-support-assistant/internal/session/repository"
	memoryRepo "conversational-support-assistant/internal/session/repository/memory"
	redisRepo "conversational-support-assistant/internal/session/repository/redis"
	"conversational-support-assistant/pkg/anthropic"
	"conversational-support-assistant/pkg/log"
	"conversational-support-assistant/pkg/telegram"
)

// @title       Conversational Support Assistant API
// @description Stateful support chatbot with semantic routing, Anthropic LLM handlers and per-session conversation memory.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Support Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM client
	llm, err := anthropic.New(anthropic.Config{
		APIKey:  cfg.Anthropic.APIKey,
		Model:   cfg.Anthropic.Model,
		BaseURL: cfg.Anthropic.BaseURL,
		Timeout: cfg.Anthropic.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Anthropic client: ", err)
		return
	}
	logger.Infof(ctx, "Anthropic client ready, model=%s", llm.Model())

	// 4. Session store
	var repo repository.Repository
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		repo = redisRepo.New(
			cfg.Session.Redis.Addr,
			cfg.Session.Redis.Password,
			cfg.Session.Redis.DB,
			redisRepo.WithPrefix(cfg.Session.Redis.Prefix),
			redisRepo.WithTTL(cfg.Session.Redis.TTL),
		)
		logger.Infof(ctx, "Session store: redis at %s", cfg.Session.Redis.Addr)
	default:
		repo = memoryRepo.New()
		logger.Info(ctx, "Session store: in-memory")
	}

	// 5. Conversation graph
	semanticRouter := router.New(llm, logger)
	productHandler := product.New(logger, llm)
	genericHandler := generic.New(logger, llm)
	orch := orchestrator.New(logger, semanticRouter, productHandler, genericHandler)

	// 6. Assistant usecase
	assistantUC := usecase.New(logger, repo, orch)

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistantUC:     assistantUC,
		RateLimit:       cfg.RateLimit,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
