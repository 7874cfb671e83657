package notification

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NotifyInput contains parameters for messaging a worker
type NotifyInput struct {
	ChatID int64
	Text   string
}

// DispatchInput contains parameters for a dispatch alert
type DispatchInput struct {
	// Title is shown as the alert heading
	Title string
	Text  string
}

// TelegramSender is the part of the Telegram bot API the notifier needs
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// DiscordSender is the part of the Discord session the dispatcher needs
type DiscordSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// TelegramConfig holds configuration for the Telegram notifier
type TelegramConfig struct {
	Sender TelegramSender
	Logger *slog.Logger
}

// DiscordConfig holds configuration for the Discord dispatcher
type DiscordConfig struct {
	Sender    DiscordSender
	ChannelID string
	Logger    *slog.Logger
}
