package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramNotifier implements Notifier over the Telegram bot API
type telegramNotifier struct {
	sender TelegramSender
	logger *slog.Logger
}

// NewTelegram creates a notifier that messages workers on Telegram
func NewTelegram(cfg *TelegramConfig) (*telegramNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("telegram sender cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &telegramNotifier{
		sender: cfg.Sender,
		logger: logger.With("notifier", "telegram"),
	}, nil
}

// Notify sends a plain text message to the chat
func (n *telegramNotifier) Notify(ctx context.Context, input *NotifyInput) error {
	if input == nil || input.ChatID == 0 {
		return errors.New("input and chat ID cannot be empty")
	}

	if input.Text == "" {
		return errors.New("text cannot be empty")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.sender.Send(tgbotapi.NewMessage(input.ChatID, input.Text)); err != nil {
		n.logger.Warn("failed to send message", "chatID", input.ChatID, "error", err)
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}
