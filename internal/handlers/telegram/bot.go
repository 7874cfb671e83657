package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/services/location"
	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	taskService "github.com/fieldtrack/fieldtrack/internal/services/task"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// defaultUpdateTimeout is the long polling timeout in seconds
const defaultUpdateTimeout = 60

// BotAPI is the part of the Telegram bot API the bot uses
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot represents the Telegram bot instance
type Bot struct {
	api             BotAPI
	commands        map[string]CommandHandler
	locationService location.Service
	messaging       messaging.Service
	logger          *slog.Logger
	config          *Config

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds the configuration for the bot
type Config struct {
	API BotAPI

	// UpdateTimeout is the long polling timeout in seconds
	UpdateTimeout int

	// Services
	LocationService location.Service
	Tracker         tracking.Service
	TaskService     taskService.Service
	Messaging       messaging.Service
	Logger          *slog.Logger
}

// New creates a new Telegram bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.API == nil {
		return nil, errors.New("bot API cannot be nil")
	}

	if cfg.LocationService == nil {
		return nil, errors.New("location service cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracking service cannot be nil")
	}

	if cfg.TaskService == nil {
		return nil, errors.New("task service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.UpdateTimeout <= 0 {
		cfg.UpdateTimeout = defaultUpdateTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		api:             cfg.API,
		commands:        make(map[string]CommandHandler),
		locationService: cfg.LocationService,
		messaging:       cfg.Messaging,
		logger:          logger.With("handler", "telegram"),
		config:          cfg,
	}

	bot.addCommand(NewStartCommand(cfg.Messaging))
	bot.addCommand(NewTaskCommand(taskActionBegin, cfg.Tracker, cfg.TaskService, cfg.Messaging))
	bot.addCommand(NewTaskCommand(taskActionComplete, cfg.Tracker, cfg.TaskService, cfg.Messaging))
	bot.addCommand(NewTaskCommand(taskActionCancel, cfg.Tracker, cfg.TaskService, cfg.Messaging))

	return bot, nil
}

func (b *Bot) addCommand(cmd CommandHandler) {
	b.commands[cmd.GetName()] = cmd
}

// Start registers the command menu and starts the update loop
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		return errors.New("bot already started")
	}

	if err := b.registerCommands(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.run(ctx, updates)
	}()

	b.logger.Info("bot is now running")
	return nil
}

// Stop stops polling and waits for the update being handled to finish
func (b *Bot) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel == nil {
		return
	}

	b.api.StopReceivingUpdates()
	cancel()
	b.wg.Wait()
	b.logger.Info("bot has been shut down")
}

// run handles updates one at a time until ctx is done or the channel closes
func (b *Bot) run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// registerCommands publishes the command menu
func (b *Bot) registerCommands() error {
	commands := make([]tgbotapi.BotCommand, 0, len(b.commands))
	for _, name := range []string{commandStart, commandBegin, commandComplete, commandCancel} {
		if cmd, ok := b.commands[name]; ok {
			commands = append(commands, cmd.GetCommand())
		}
	}

	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// HandleUpdate routes a single update
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.EditedMessage != nil && update.EditedMessage.Location != nil:
		b.handleLocation(ctx, update.EditedMessage, true)
	case update.Message != nil && update.Message.Location != nil:
		b.handleLocation(ctx, update.Message, false)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	}
}

func (b *Bot) handleLocation(ctx context.Context, msg *tgbotapi.Message, isEdit bool) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	output, err := b.locationService.HandleLocation(ctx, &location.HandleLocationInput{
		TelegramID: msg.From.ID,
		ChatID:     msg.Chat.ID,
		Latitude:   msg.Location.Latitude,
		Longitude:  msg.Location.Longitude,
		LivePeriod: msg.Location.LivePeriod,
		Timestamp:  time.Unix(int64(msg.Date), 0).UTC(),
		IsEdit:     isEdit,
	})
	if err != nil {
		b.logger.Error("failed to handle location", "telegramID", msg.From.ID, "isEdit", isEdit, "error", err)
		return
	}

	b.logger.Debug("location handled", "telegramID", msg.From.ID, "action", output.Action, "sessionID", output.SessionID)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}

	h, ok := b.commands[msg.Command()]
	if !ok {
		return
	}

	text, err := h.Handle(ctx, msg)
	if err != nil {
		b.logger.Error("error handling command", "command", h.GetName(), "error", err)

		apology, msgErr := b.messaging.GetTaskMessage(ctx, &messaging.GetTaskMessageInput{Type: messaging.MessageTypeError})
		if msgErr != nil {
			return
		}
		text = apology.Message
	}

	if text == "" {
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Warn("failed to send reply", "chatID", msg.Chat.ID, "error", err)
	}
}
