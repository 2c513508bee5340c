package telegram

import (
	"go.uber.org/zap"

	"habit-tracker/internal/logger"
)

func (b *Bot) SendMessageOrLogError(message string) {
	if err := b.SendMessage(message); err != nil {
		logger.Log.Error("❌ failed to send message", zap.Error(err))
	}
}
