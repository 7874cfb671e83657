package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/common/uuid"
	"github.com/fieldtrack/fieldtrack/internal/config"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/handlers/telegram"
	"github.com/fieldtrack/fieldtrack/internal/repositories/lastseen"
	"github.com/fieldtrack/fieldtrack/internal/repositories/session"
	"github.com/fieldtrack/fieldtrack/internal/repositories/task"
	"github.com/fieldtrack/fieldtrack/internal/repositories/user"
	"github.com/fieldtrack/fieldtrack/internal/services/location"
	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	"github.com/fieldtrack/fieldtrack/internal/services/monitor"
	"github.com/fieldtrack/fieldtrack/internal/services/notification"
	taskService "github.com/fieldtrack/fieldtrack/internal/services/task"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize Postgres
	db, err := database.New(ctx, &database.Config{
		DSN:         cfg.Database.DSN,
		AutoMigrate: cfg.Database.AutoMigrate,
		Logger:      logger,
	})
	if err != nil {
		fatal("Failed to connect to Postgres", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Initialize repositories
	sessionRepo, err := session.NewPostgres(&session.Config{DB: db, Logger: logger})
	if err != nil {
		fatal("Failed to create session repository", err)
	}

	taskRepo, err := task.NewPostgres(&task.Config{DB: db, Logger: logger})
	if err != nil {
		fatal("Failed to create task repository", err)
	}

	userRepo, err := user.NewPostgres(&user.Config{DB: db, Logger: logger})
	if err != nil {
		fatal("Failed to create user repository", err)
	}

	lastSeenRepo, err := lastseen.NewRedis(&lastseen.Config{RedisClient: redisClient})
	if err != nil {
		fatal("Failed to create last seen repository", err)
	}

	// Initialize Telegram API
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		fatal("Failed to create Telegram bot API", err)
	}
	botAPI.Debug = cfg.Telegram.Debug
	logger.Info("Authorized on Telegram", "account", botAPI.Self.UserName)

	// Initialize services
	messagingSvc := messaging.New()

	notifier, err := notification.NewTelegram(&notification.TelegramConfig{
		Sender: botAPI,
		Logger: logger,
	})
	if err != nil {
		fatal("Failed to create notifier", err)
	}

	dispatcher := newDispatcher(cfg, logger)

	trackingSvc, err := tracking.New(&tracking.Config{
		SessionRepo:   sessionRepo,
		TaskRepo:      taskRepo,
		UserRepo:      userRepo,
		LastSeenRepo:  lastSeenRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		fatal("Failed to create tracking service", err)
	}

	locationSvc, err := location.New(&location.Config{
		MaxMessageAge: cfg.MaxMessageAge,
		Tracker:       trackingSvc,
		Messaging:     messagingSvc,
		Notifier:      notifier,
		Clock:         clock.New(),
		Logger:        logger,
	})
	if err != nil {
		fatal("Failed to create location service", err)
	}

	taskSvc, err := taskService.New(&taskService.Config{
		Transactor: db,
		TaskRepo:   taskRepo,
		Tracker:    trackingSvc,
		Clock:      clock.New(),
		Logger:     logger,
	})
	if err != nil {
		fatal("Failed to create task service", err)
	}

	monitorSvc, err := monitor.New(&monitor.Config{
		Interval:   cfg.Monitor.Interval,
		Timeout:    cfg.Monitor.Timeout,
		Tracker:    trackingSvc,
		Messaging:  messagingSvc,
		Notifier:   notifier,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	if err != nil {
		fatal("Failed to create connectivity monitor", err)
	}

	// Initialize Telegram bot
	bot, err := telegram.New(&telegram.Config{
		API:             botAPI,
		LocationService: locationSvc,
		Tracker:         trackingSvc,
		TaskService:     taskSvc,
		Messaging:       messagingSvc,
		Logger:          logger,
	})
	if err != nil {
		fatal("Failed to create Telegram bot", err)
	}

	if err := bot.Start(ctx); err != nil {
		fatal("Failed to start Telegram bot", err)
	}

	if err := monitorSvc.Start(ctx); err != nil {
		fatal("Failed to start connectivity monitor", err)
	}

	wait := gfshutdown.GracefulShutdown(
		ctx,
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"telegram": func(ctx context.Context) error {
				bot.Stop()
				return nil
			},
			"monitor": func(ctx context.Context) error {
				monitorSvc.Stop()
				return nil
			},
		},
	)

	exitCode := <-wait

	// Stores close after the workers using them have stopped
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close Redis", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("Failed to close Postgres", "error", err)
	}

	logger.Info("Bot has been shut down", "exitCode", exitCode)
	os.Exit(exitCode)
}

// newDispatcher posts alerts to Discord when configured and drops them otherwise
func newDispatcher(cfg *config.Config, logger *slog.Logger) notification.Dispatcher {
	if !cfg.DispatchEnabled() {
		logger.Info("Discord dispatch alerts disabled")
		return notification.NewNoop()
	}

	discordSession, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		fatal("Failed to create Discord session", err)
	}
	discordSession.Client.Timeout = 10 * time.Second

	dispatcher, err := notification.NewDiscord(&notification.DiscordConfig{
		Sender:    discordSession,
		ChannelID: cfg.Discord.ChannelID,
		Logger:    logger,
	})
	if err != nil {
		fatal("Failed to create Discord dispatcher", err)
	}

	return dispatcher
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
