package location

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/models"
	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	"github.com/fieldtrack/fieldtrack/internal/services/notification"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
)

// service implements the Service interface
type service struct {
	maxMessageAge time.Duration
	tracker       tracking.Service
	messaging     messaging.Service
	notifier      notification.Notifier
	clock         clock.Clock
	logger        *slog.Logger
}

// New creates a new location service
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

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	maxAge := cfg.MaxMessageAge
	if maxAge <= 0 {
		maxAge = DefaultMaxMessageAge
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		maxMessageAge: maxAge,
		tracker:       cfg.Tracker,
		messaging:     cfg.Messaging,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		logger:        logger.With("service", "location"),
	}, nil
}

// HandleLocation processes one location message or live location edit.
// On failure the worker gets an apology unless the update was an edit.
func (s *service) HandleLocation(ctx context.Context, input *HandleLocationInput) (*HandleLocationOutput, error) {
	if input == nil || input.TelegramID == 0 || input.ChatID == 0 {
		return nil, ErrInvalidInput
	}

	output, err := s.handle(ctx, input)
	if err != nil {
		if !input.IsEdit {
			s.reply(ctx, input.ChatID, &messaging.GetLocationMessageInput{Type: messaging.MessageTypeError})
		}
		return &HandleLocationOutput{Action: ActionFailed}, err
	}

	return output, nil
}

func (s *service) handle(ctx context.Context, input *HandleLocationInput) (*HandleLocationOutput, error) {
	now := s.clock.Now()
	live := input.LivePeriod > 0

	if !live && !input.IsEdit && !input.Timestamp.IsZero() && now.Sub(input.Timestamp) > s.maxMessageAge {
		s.logger.Debug("discarding stale location message", "telegramID", input.TelegramID, "sentAt", input.Timestamp)
		return &HandleLocationOutput{Action: ActionDiscarded}, nil
	}

	resolved, err := s.tracker.ResolveUser(ctx, &tracking.ResolveUserInput{
		TelegramID: input.TelegramID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if resolved.User == nil {
		if !input.IsEdit {
			s.reply(ctx, input.ChatID, &messaging.GetLocationMessageInput{Type: messaging.MessageTypeNotRegistered})
		}
		return &HandleLocationOutput{Action: ActionNotRegistered}, nil
	}

	user := resolved.User

	if !live {
		if !input.IsEdit {
			s.reply(ctx, input.ChatID, &messaging.GetLocationMessageInput{Type: messaging.MessageTypeEnableLiveSharing})
			return &HandleLocationOutput{Action: ActionInstructions}, nil
		}
		return s.stop(ctx, input, user)
	}

	return s.track(ctx, input, user, now)
}

// stop pauses the worker's session after they end a live share.
// The last-seen entry is dropped only after the session is paused.
func (s *service) stop(ctx context.Context, input *HandleLocationInput, user *models.User) (*HandleLocationOutput, error) {
	active, err := s.tracker.GetActiveSession(ctx, &tracking.GetActiveSessionInput{
		UserID: user.ID,
	})
	if err != nil {
		return nil, err
	}

	if active.Session == nil || !active.Session.IsActive {
		if err := s.forgetLastSeen(ctx, input.TelegramID); err != nil {
			return nil, err
		}
		return &HandleLocationOutput{Action: ActionStopped}, nil
	}

	deactivated, err := s.tracker.DeactivateSession(ctx, &tracking.DeactivateSessionInput{
		SessionID: active.Session.ID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.forgetLastSeen(ctx, input.TelegramID); err != nil {
		return nil, err
	}

	task, err := s.tracker.GetUserActiveTask(ctx, &tracking.GetUserActiveTaskInput{
		UserID: user.ID,
	})
	if err != nil {
		return nil, err
	}

	msg := &messaging.GetLocationMessageInput{Type: messaging.MessageTypeTrackingStopped}
	if task.Task != nil {
		msg.TaskTitle = task.Task.Title
	}
	s.reply(ctx, input.ChatID, msg)

	s.logger.Info("live sharing stopped", "userID", user.ID, "sessionID", deactivated.Session.ID)

	return &HandleLocationOutput{
		Action:    ActionStopped,
		SessionID: deactivated.Session.ID,
	}, nil
}

// track records a live update, opening or resuming the session as needed
func (s *service) track(ctx context.Context, input *HandleLocationInput, user *models.User, now time.Time) (*HandleLocationOutput, error) {
	active, err := s.tracker.GetActiveSession(ctx, &tracking.GetActiveSessionInput{
		UserID: user.ID,
	})
	if err != nil {
		return nil, err
	}

	var (
		session *models.Session
		action  Action
	)

	switch {
	case active.Session == nil:
		created, err := s.tracker.CreateSession(ctx, &tracking.CreateSessionInput{
			UserID: user.ID,
		})
		if err != nil {
			return nil, err
		}
		session = created.Session
		action = ActionCreated
		if created.Existing {
			action = ActionContinued
		}
	case !active.Session.IsActive:
		resumed, err := s.tracker.ReactivateSession(ctx, &tracking.ReactivateSessionInput{
			SessionID: active.Session.ID,
		})
		if err != nil {
			return nil, err
		}
		session = resumed.Session
		action = ActionReactivated
	default:
		session = active.Session
		action = ActionContinued
	}

	if err := s.tracker.TouchLastSeen(ctx, &tracking.TouchLastSeenInput{
		TelegramID: input.TelegramID,
	}); err != nil {
		return nil, err
	}

	if _, err := s.tracker.SavePosition(ctx, &tracking.SavePositionInput{
		UserID:    user.ID,
		SessionID: session.ID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	output := &HandleLocationOutput{
		Action:    action,
		SessionID: session.ID,
	}

	var task *models.Task
	if !session.HasTask() || action == ActionReactivated {
		found, err := s.tracker.GetUserActiveTask(ctx, &tracking.GetUserActiveTaskInput{
			UserID: user.ID,
		})
		if err != nil {
			return nil, err
		}
		task = found.Task
	}

	bound := false
	if task != nil && !session.HasTask() {
		updated, err := s.tracker.UpdateSessionTask(ctx, &tracking.UpdateSessionTaskInput{
			SessionID: session.ID,
			TaskID:    task.ID,
		})
		if err != nil {
			return nil, err
		}
		bound = updated.Changed
		if bound {
			output.TaskID = task.ID
		}
	}

	switch {
	case action == ActionReactivated:
		msg := &messaging.GetLocationMessageInput{Type: messaging.MessageTypeConnectionRestored}
		if task != nil {
			msg.TaskTitle = task.Title
		}
		s.reply(ctx, input.ChatID, msg)
	case input.IsEdit:
		// background edits only get the reconnect message
	case bound:
		s.reply(ctx, input.ChatID, &messaging.GetLocationMessageInput{
			Type:      messaging.MessageTypeTaskBound,
			TaskTitle: task.Title,
		})
	case action == ActionCreated:
		s.reply(ctx, input.ChatID, &messaging.GetLocationMessageInput{Type: messaging.MessageTypeTrackingStarted})
	}

	s.logger.Debug("location recorded", "userID", user.ID, "sessionID", session.ID, "action", action)

	return output, nil
}

func (s *service) forgetLastSeen(ctx context.Context, telegramID int64) error {
	return s.tracker.ForgetLastSeen(ctx, &tracking.ForgetLastSeenInput{
		TelegramID: telegramID,
	})
}

// reply sends a catalog message to the chat. Failures are logged and swallowed.
func (s *service) reply(ctx context.Context, chatID int64, input *messaging.GetLocationMessageInput) {
	msg, err := s.messaging.GetLocationMessage(ctx, input)
	if err != nil {
		s.logger.Error("failed to build message", "type", input.Type, "error", err)
		return
	}

	if err := s.notifier.Notify(ctx, &notification.NotifyInput{
		ChatID: chatID,
		Text:   msg.Message,
	}); err != nil {
		s.logger.Warn("failed to notify worker", "chatID", chatID, "type", input.Type, "error", err)
	}
}
