package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/selivanovm/moviebot/internal/dialog"
)

// chatConversation implements dialog.Conversation over one Telegram chat.
// Ask marks the entry as waiting before posting the question, so the update
// loop routes the next plain message into the answers channel.
type chatConversation struct {
	bot    *Bot
	chatID int64
	entry  *sessionEntry
}

func (c *chatConversation) Say(text string) {
	if err := c.bot.Send(c.chatID, text); err != nil {
		c.bot.logger.Error("failed to send message",
			zap.Int64("chat_id", c.chatID),
			zap.Error(err),
		)
	}
}

func (c *chatConversation) Ask(ctx context.Context, text string) (string, error) {
	// drop a stale answer left over from a question that was never consumed
	select {
	case <-c.entry.answers:
	default:
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.entry.setWaiting(true)
	defer c.entry.setWaiting(false)

	if err := c.bot.Send(c.chatID, text); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case answer := <-c.entry.answers:
		return answer, nil
	}
}

var _ dialog.Conversation = (*chatConversation)(nil)
