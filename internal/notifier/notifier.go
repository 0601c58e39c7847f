package notifier

import (
	"runtime/debug"

	"github.com/popularsmm/storefront/pkg/logger"
)

// Notifier fans a notification out to the configured channels: the log
// channel (the toast analog for a headless session) and, when configured,
// the Telegram admin channel.
type Notifier struct {
	logger *logger.Logger

	TelegramNotifier *TelegramNotifier
}

func NewNotifier(logger *logger.Logger, telegram *TelegramNotifier) *Notifier {
	return &Notifier{logger: logger, TelegramNotifier: telegram}
}

// safeCall runs a function with panic recovery
func (n *Notifier) safeCall(fn func(), context string) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Function panicked",
				"context", context,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

func (n *Notifier) Notify(title, message string) {
	n.logger.Info("Notification ", "title ", title, "message ", message)

	if n.TelegramNotifier != nil {
		n.safeCall(func() { n.TelegramNotifier.Notify(title, message) }, "telegramNotification")
	}
}
