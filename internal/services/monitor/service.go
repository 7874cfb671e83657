package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/models"
	lastSeenRepo "github.com/fieldtrack/fieldtrack/internal/repositories/lastseen"
	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	"github.com/fieldtrack/fieldtrack/internal/services/notification"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
)

// service implements the Service interface
type service struct {
	interval   time.Duration
	timeout    time.Duration
	tracker    tracking.Service
	messaging  messaging.Service
	notifier   notification.Notifier
	dispatcher notification.Dispatcher
	logger     *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new connectivity monitor
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dispatcher := cfg.Dispatcher
	if dispatcher == nil {
		dispatcher = notification.NewNoop()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		interval:   interval,
		timeout:    timeout,
		tracker:    cfg.Tracker,
		messaging:  cfg.Messaging,
		notifier:   cfg.Notifier,
		dispatcher: dispatcher,
		logger:     logger.With("service", "monitor"),
	}, nil
}

// Start runs sweeps on a ticker in a background goroutine
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	ticker := time.NewTicker(s.interval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		s.logger.Info("connectivity monitor started", "interval", s.interval, "timeout", s.timeout)

		for {
			select {
			case <-ticker.C:
				if _, err := s.Sweep(ctx); err != nil {
					s.logger.Error("sweep failed", "error", err)
				}
			case <-ctx.Done():
				s.logger.Info("connectivity monitor shutting down", "reason", ctx.Err())
				return
			}
		}
	}()

	return nil
}

// Stop ends the sweep loop. It is safe to call more than once.
func (s *service) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Sweep pauses the session of every worker whose last update is older than the timeout
func (s *service) Sweep(ctx context.Context) (*SweepOutput, error) {
	stale, err := s.tracker.ListStaleUsers(ctx, &tracking.ListStaleUsersInput{
		Timeout: s.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stale users: %w", err)
	}

	output := &SweepOutput{}
	if len(stale.Entries) == 0 {
		return output, nil
	}

	s.logger.Info("found silent workers", "count", len(stale.Entries))

	for _, entry := range stale.Entries {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		deactivated, err := s.handleStale(ctx, entry)
		switch {
		case err != nil:
			output.Failed++
			s.logger.Error("failed to handle silent worker", "telegramID", entry.TelegramID, "error", err)
		case deactivated:
			output.Deactivated++
		default:
			output.Skipped++
		}
	}

	return output, nil
}

func (s *service) handleStale(ctx context.Context, entry *lastSeenRepo.Entry) (bool, error) {
	logger := s.logger.With("telegramID", entry.TelegramID, "lastSeen", entry.SeenAt)

	resolved, err := s.tracker.ResolveUser(ctx, &tracking.ResolveUserInput{
		TelegramID: entry.TelegramID,
	})
	if err != nil {
		return false, err
	}

	if resolved.User == nil {
		logger.Warn("silent worker is not registered")
		return false, s.forget(ctx, entry)
	}

	user := resolved.User

	active, err := s.tracker.GetActiveSession(ctx, &tracking.GetActiveSessionInput{
		UserID: user.ID,
	})
	if err != nil {
		return false, err
	}

	if active.Session == nil || !active.Session.IsActive {
		return false, s.forget(ctx, entry)
	}

	task, err := s.tracker.GetUserActiveTask(ctx, &tracking.GetUserActiveTaskInput{
		UserID: user.ID,
	})
	if err != nil {
		return false, err
	}

	if _, err := s.tracker.DeactivateSession(ctx, &tracking.DeactivateSessionInput{
		SessionID: active.Session.ID,
	}); err != nil {
		return false, err
	}

	logger.Info("paused silent session", "userID", user.ID, "sessionID", active.Session.ID, "taskInProgress", task.Task != nil)

	s.notifyWorker(ctx, user, task.Task)
	if task.Task != nil {
		s.alertDispatch(ctx, user, task.Task)
	}

	return true, s.forget(ctx, entry)
}

func (s *service) notifyWorker(ctx context.Context, user *models.User, task *models.Task) {
	input := &messaging.GetLocationMessageInput{Type: messaging.MessageTypeConnectionLost}
	if task != nil {
		input.TaskTitle = task.Title
	}

	msg, err := s.messaging.GetLocationMessage(ctx, input)
	if err != nil {
		s.logger.Error("failed to build message", "error", err)
		return
	}

	chatID := user.ChatID
	if chatID == 0 {
		chatID = user.TelegramID
	}

	if err := s.notifier.Notify(ctx, &notification.NotifyInput{
		ChatID: chatID,
		Text:   msg.Message,
	}); err != nil {
		s.logger.Warn("failed to notify worker", "userID", user.ID, "error", err)
	}
}

func (s *service) alertDispatch(ctx context.Context, user *models.User, task *models.Task) {
	msg, err := s.messaging.GetDispatchMessage(ctx, &messaging.GetDispatchMessageInput{
		Type:       messaging.MessageTypeConnectionLost,
		WorkerName: user.Name,
		TaskTitle:  task.Title,
	})
	if err != nil {
		s.logger.Error("failed to build dispatch message", "error", err)
		return
	}

	if err := s.dispatcher.Dispatch(ctx, &notification.DispatchInput{
		Title: "Потеряна связь",
		Text:  msg.Message,
	}); err != nil {
		s.logger.Warn("failed to alert dispatch", "userID", user.ID, "taskID", task.ID, "error", err)
	}
}

func (s *service) forget(ctx context.Context, entry *lastSeenRepo.Entry) error {
	return s.tracker.ForgetLastSeen(ctx, &tracking.ForgetLastSeenInput{
		TelegramID: entry.TelegramID,
		SeenAt:     entry.SeenAt,
	})
}
