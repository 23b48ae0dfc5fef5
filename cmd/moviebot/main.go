package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/selivanovm/moviebot/internal/catalog/tmdb"
	"github.com/selivanovm/moviebot/internal/config"
	"github.com/selivanovm/moviebot/internal/metrics"
	"github.com/selivanovm/moviebot/internal/nlp/witai"
	"github.com/selivanovm/moviebot/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("logger init failed", zap.Error(err))
	}
	defer logger.Sync()

	m := metrics.New()

	extractor := witai.New(witai.Config{
		Token:   cfg.NLP.Token,
		BaseURL: cfg.NLP.BaseURL,
		Timeout: cfg.NLP.Timeout,
	}, logger)

	catalogClient := tmdb.New(tmdb.Config{
		APIKey:  cfg.Catalog.APIKey,
		BaseURL: cfg.Catalog.BaseURL,
		Timeout: cfg.Catalog.Timeout,
	}, logger)

	bot, err := telegram.New(telegram.BotConfig{
		Token:             cfg.Telegram.Token,
		Debug:             cfg.Telegram.Debug,
		TriggersPerMinute: cfg.RateLimit.TriggersPerMinute,
	}, extractor, catalogClient, logger, m)
	if err != nil {
		logger.Fatal("bot init failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsServer := &http.Server{
		Addr:    cfg.Metrics.Addr,
		Handler: metrics.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", cfg.Metrics.Addr))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return bot.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}
