package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CommandHandler defines the interface for Telegram command handlers
type CommandHandler interface {
	// GetName returns the command name without the leading slash
	GetName() string

	// GetCommand returns the command definition shown in the Telegram menu
	GetCommand() tgbotapi.BotCommand

	// Handle processes a command message and returns the reply text
	Handle(ctx context.Context, msg *tgbotapi.Message) (string, error)
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the command definition
func (c *BaseCommand) GetCommand() tgbotapi.BotCommand {
	return tgbotapi.BotCommand{
		Command:     c.Name,
		Description: c.Description,
	}
}
