package notifier

import (
	"context"

	"github.com/go-telegram/bot"

	"github.com/popularsmm/storefront/pkg/logger"
)

// TelegramNotifier forwards notifications to a fixed admin chat. It is the
// channel operators watch for new lead submissions.
type TelegramNotifier struct {
	logger *logger.Logger
	bot    *bot.Bot

	chatID string
}

func NewTelegramNotifier(logger *logger.Logger, token, chatID string) (*TelegramNotifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, err
	}

	return &TelegramNotifier{
		logger: logger,
		bot:    b,
		chatID: chatID,
	}, nil
}

func (t *TelegramNotifier) Notify(title, message string) {
	params := &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   title + "\n" + message,
	}
	_, err := t.bot.SendMessage(context.Background(), params)
	if err != nil {
		t.logger.Error("Failed to send notification: ", err)
	}
}
