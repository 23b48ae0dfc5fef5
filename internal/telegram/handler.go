package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/selivanovm/moviebot/internal/dialog"
)

const (
	msgWelcome = "Hi! Tell me what you feel like watching, for example " +
		"\"movies with Tom Hanks\" or \"a science fiction thriller\", " +
		"and I'll dig something up."
	msgHelp = "Send me a free-text movie request, like \"comedies directed by " +
		"Mel Brooks\". I'll ask a few yes/no questions when a name is ambiguous, " +
		"then show movies one at a time.\n\n" +
		"/cancel - drop the current search\n" +
		"/help - this message"
	msgUnknownCommand = "Unknown command. /help shows what I can do."
	msgCancelled      = "Okay, dropped that search. Send a new request whenever."
	msgNothingToDrop  = "Nothing in progress. Send me a movie request!"
	msgRateLimited    = "Too many requests. Please wait a minute."
)

// sessionEntry is the per-chat routing state: one live session, at most one
// pending question.
type sessionEntry struct {
	cancel  context.CancelFunc
	answers chan string

	mu      sync.Mutex
	waiting bool
}

func (e *sessionEntry) setWaiting(v bool) {
	e.mu.Lock()
	e.waiting = v
	e.mu.Unlock()
}

func (e *sessionEntry) isWaiting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.waiting
}

// Handler routes incoming messages: command, answer to a pending question,
// or a fresh trigger that starts a session. Sessions are keyed by chat id and
// share no state with each other.
type Handler struct {
	bot *Bot

	mu       sync.Mutex
	sessions map[int64]*sessionEntry
}

func NewHandler(bot *Bot) *Handler {
	return &Handler{
		bot:      bot,
		sessions: make(map[int64]*sessionEntry),
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	h.bot.logger.Debug("received message",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.Bool("is_command", msg.IsCommand()),
	)

	if msg.IsCommand() {
		h.handleCommand(ctx, msg)
		return
	}

	chatID := msg.Chat.ID

	if entry := h.lookup(chatID); entry != nil {
		if entry.isWaiting() {
			// answer to the pending question; never rate limited
			select {
			case entry.answers <- msg.Text:
			default:
				h.bot.logger.Warn("dropped extra answer", zap.Int64("chat_id", chatID))
			}
			return
		}
		h.bot.logger.Debug("message ignored, session busy", zap.Int64("chat_id", chatID))
		return
	}

	h.startSession(ctx, msg)
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.bot.Send(msg.Chat.ID, msgWelcome)
	case "help":
		h.bot.Send(msg.Chat.ID, msgHelp)
	case "cancel":
		h.handleCancel(msg.Chat.ID)
	default:
		h.bot.Send(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleCancel is the host-level session reset: the session context is
// cancelled and the entry removed, so no further replies are queued.
func (h *Handler) handleCancel(chatID int64) {
	h.mu.Lock()
	entry := h.sessions[chatID]
	delete(h.sessions, chatID)
	h.mu.Unlock()

	if entry == nil {
		h.bot.Send(chatID, msgNothingToDrop)
		return
	}

	entry.cancel()
	h.bot.logger.Info("session cancelled by user", zap.Int64("chat_id", chatID))
	h.bot.Send(chatID, msgCancelled)
}

func (h *Handler) startSession(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if !h.bot.limiter.Allow(msg.From.ID) {
		h.bot.logger.Warn("rate limit exceeded",
			zap.Int64("user_id", msg.From.ID),
			zap.Time("reset_at", h.bot.limiter.ResetTime(msg.From.ID)),
		)
		h.bot.RecordRateLimitHit(msg.From.ID)
		h.bot.Send(chatID, msgRateLimited)
		return
	}

	text := StripMention(msg.Text, h.bot.username())
	if strings.TrimSpace(text) == "" {
		h.bot.Send(chatID, msgHelp)
		return
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	entry := &sessionEntry{
		cancel:  cancel,
		answers: make(chan string, 1),
	}

	h.mu.Lock()
	h.sessions[chatID] = entry
	h.mu.Unlock()

	session := dialog.NewSession(dialog.Deps{
		Conversation: &chatConversation{bot: h.bot, chatID: chatID, entry: entry},
		Extractor:    h.bot.extractor,
		Catalog:      h.bot.catalog,
		Logger:       h.bot.logger,
		Metrics:      h.bot.metrics,
	})

	h.bot.SendTyping(chatID)

	h.bot.wg.Add(1)
	go func() {
		defer h.bot.wg.Done()
		defer cancel()
		defer h.release(chatID, entry)

		session.Run(sessionCtx, text)
	}()
}

func (h *Handler) lookup(chatID int64) *sessionEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions[chatID]
}

// release removes the entry unless /cancel already replaced or dropped it.
func (h *Handler) release(chatID int64, entry *sessionEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessions[chatID] == entry {
		delete(h.sessions, chatID)
	}
}

// CancelAll drops every live session, used on shutdown.
func (h *Handler) CancelAll() {
	h.mu.Lock()
	entries := make([]*sessionEntry, 0, len(h.sessions))
	for chatID, entry := range h.sessions {
		entries = append(entries, entry)
		delete(h.sessions, chatID)
	}
	h.mu.Unlock()

	for _, entry := range entries {
		entry.cancel()
	}
}
