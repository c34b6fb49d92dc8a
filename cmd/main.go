package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/DanRulev/wordtrainer/internal/bot"
	"github.com/DanRulev/wordtrainer/internal/client"
	"github.com/DanRulev/wordtrainer/internal/config"
	"github.com/DanRulev/wordtrainer/internal/service"
	"github.com/DanRulev/wordtrainer/internal/storage/session"
)

func setupLogger(env string, cfg config.LogConfig) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}

	if cfg.File == "" {
		return logger
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zap.InfoLevel)

	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env, cfg.Log)
	defer logger.Sync()

	figure.NewFigure("WORDTRAINER", "", true).Print()

	clients := client.InitClients(cfg.API.BaseURL, cfg.API.MyMemoryURL, cfg.App.Timeout, logger)
	newWorkspace := func() *service.Workspace {
		store := session.NewStore()
		return service.NewWorkspace(service.Deps{
			Repo:       clients.Words(store),
			Auth:       clients.AuthAPI,
			Translator: clients.MyMemoryAPI,
			Session:    store,
			PageSize:   cfg.Table.PageSize,
		}, logger)
	}

	api, err := bot.NewBotAPI(cfg.BotToken, cfg.Env)
	if err != nil {
		logger.Fatal("failed init bot", zap.Error(err))
	}

	handler := bot.NewHandler(api, bot.NewTelegramFiles(api, client.NewHTTPClient(cfg.App.Timeout)), newWorkspace, bot.Options{
		SessionTTL: cfg.Session.TTL,
		RPS:        cfg.RateLimit.RPS,
		Burst:      cfg.RateLimit.Burst,
		Timeout:    cfg.App.Timeout,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler.StartCleanup(ctx, cfg.Session.CleanupInterval)
	bot.NewTelegramAPI(api, handler, logger).Start(ctx)
}
