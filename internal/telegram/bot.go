package telegram

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/selivanovm/moviebot/internal/catalog"
	"github.com/selivanovm/moviebot/internal/metrics"
	"github.com/selivanovm/moviebot/internal/nlp"
	"github.com/selivanovm/moviebot/internal/ratelimit"
)

type BotConfig struct {
	Token             string
	Debug             bool
	TriggersPerMinute int
}

type Bot struct {
	api       *tgbotapi.BotAPI
	extractor nlp.Extractor
	catalog   catalog.Client
	logger    *zap.Logger
	metrics   *metrics.Metrics
	limiter   *ratelimit.Limiter
	handler   *Handler
	wg        sync.WaitGroup
}

func New(cfg BotConfig, extractor nlp.Extractor, catalogClient catalog.Client, logger *zap.Logger, m *metrics.Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	api.Debug = cfg.Debug

	bot := &Bot{
		api:       api,
		extractor: extractor,
		catalog:   catalogClient,
		logger:    logger,
		metrics:   m,
		limiter: ratelimit.New(ratelimit.Config{
			TriggersPerMinute: cfg.TriggersPerMinute,
		}),
	}

	bot.handler = NewHandler(bot)

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
	)

	return bot, nil
}

// Run consumes updates until the context is cancelled, then waits for every
// in-flight session to observe the cancellation.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot started, waiting for updates")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopping, waiting for sessions to finish")
			b.api.StopReceivingUpdates()
			b.handler.CancelAll()
			b.wg.Wait()
			b.logger.Info("all sessions finished")
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate runs on the update loop goroutine so answer routing stays
// ordered per chat; only new sessions fork off.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			chatID := int64(0)
			if update.Message != nil && update.Message.Chat != nil {
				chatID = update.Message.Chat.ID
			}
			b.logger.Error("panic in update handler",
				zap.Any("panic", r),
				zap.Int64("chat_id", chatID),
			)
		}
	}()

	b.handler.HandleMessage(ctx, update.Message)
}

func (b *Bot) Send(chatID int64, text string) error {
	if b.api == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendTyping(chatID int64) {
	if b.api == nil {
		return
	}
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.api.Send(action)
}

func (b *Bot) RecordRateLimitHit(userID int64) {
	if b.metrics != nil {
		b.metrics.RecordRateLimitHit(strconv.FormatInt(userID, 10))
	}
}

func (b *Bot) username() string {
	if b.api == nil {
		return ""
	}
	return b.api.Self.UserName
}
