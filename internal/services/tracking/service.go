package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/common/uuid"
	"github.com/fieldtrack/fieldtrack/internal/models"
	lastSeenRepo "github.com/fieldtrack/fieldtrack/internal/repositories/lastseen"
	sessionRepo "github.com/fieldtrack/fieldtrack/internal/repositories/session"
	taskRepo "github.com/fieldtrack/fieldtrack/internal/repositories/task"
	userRepo "github.com/fieldtrack/fieldtrack/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	taskRepo      taskRepo.Repository
	userRepo      userRepo.Repository
	lastSeenRepo  lastSeenRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new tracking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.TaskRepo == nil {
		return nil, ErrNilTaskRepo
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.LastSeenRepo == nil {
		return nil, ErrNilLastSeenRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		taskRepo:      cfg.TaskRepo,
		userRepo:      cfg.UserRepo,
		lastSeenRepo:  cfg.LastSeenRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("service", "tracking"),
	}, nil
}

// GetActiveSession returns the user's most recently started open session
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &GetActiveSessionOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &GetActiveSessionOutput{
		Session: session,
	}, nil
}

// CreateSession starts a new active session. When the store reports that the
// user already has an open session, that session is returned instead,
// resumed if it was paused.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()

	session, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: &models.Session{
			ID:        s.uuidGenerator.NewUUID(),
			UserID:    input.UserID,
			TaskID:    input.TaskID,
			StartTime: now,
			IsActive:  true,
			UpdatedAt: now,
		},
	})
	if err == nil {
		s.logger.Info("session created", "sessionID", session.ID, "userID", session.UserID)
		return &CreateSessionOutput{
			Session: session,
		}, nil
	}

	if !errors.Is(err, sessionRepo.ErrOpenSessionExists) {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	existing, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get existing open session: %w", err)
	}

	s.logger.Info("open session already exists", "sessionID", existing.ID, "userID", existing.UserID)

	if !existing.IsActive {
		existing, err = s.sessionRepo.SetSessionActive(ctx, &sessionRepo.SetSessionActiveInput{
			SessionID: existing.ID,
			IsActive:  true,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resume existing session: %w", err)
		}
	}

	return &CreateSessionOutput{
		Session:  existing,
		Existing: true,
	}, nil
}

// ReactivateSession resumes a paused session. The task and start time are kept.
func (s *service) ReactivateSession(ctx context.Context, input *ReactivateSessionInput) (*ReactivateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsOpen() {
		return nil, ErrSessionEnded
	}

	if session.IsActive {
		return &ReactivateSessionOutput{
			Session: session,
		}, nil
	}

	session, err = s.setActive(ctx, session.ID, true)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session reactivated", "sessionID", session.ID, "userID", session.UserID)

	return &ReactivateSessionOutput{
		Session: session,
	}, nil
}

// DeactivateSession pauses a session. The end time stays unset.
func (s *service) DeactivateSession(ctx context.Context, input *DeactivateSessionInput) (*DeactivateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.setActive(ctx, input.SessionID, false)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session deactivated", "sessionID", session.ID, "userID", session.UserID)

	return &DeactivateSessionOutput{
		Session: session,
	}, nil
}

// EndSession closes a session and sets its end time
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessionRepo.EndSession(ctx, &sessionRepo.EndSessionInput{
		SessionID: input.SessionID,
		EndTime:   s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	s.logger.Info("session ended", "sessionID", session.ID, "userID", session.UserID)

	return &EndSessionOutput{
		Session: session,
	}, nil
}

// UpdateSessionTask binds a task to a session. Binding the task the session
// already carries is a no-op.
func (s *service) UpdateSessionTask(ctx context.Context, input *UpdateSessionTaskInput) (*UpdateSessionTaskOutput, error) {
	if input == nil || input.SessionID == "" || input.TaskID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.BoundTo(input.TaskID) {
		return &UpdateSessionTaskOutput{
			Session: session,
		}, nil
	}

	if !session.IsOpen() {
		return nil, ErrSessionEnded
	}

	session, err = s.sessionRepo.SetSessionTask(ctx, &sessionRepo.SetSessionTaskInput{
		SessionID: input.SessionID,
		TaskID:    input.TaskID,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to set session task: %w", err)
	}

	s.logger.Info("task bound to session", "sessionID", session.ID, "taskID", input.TaskID)

	return &UpdateSessionTaskOutput{
		Session: session,
		Changed: true,
	}, nil
}

// AttachTaskToSession binds a task to a session after checking the task exists
func (s *service) AttachTaskToSession(ctx context.Context, input *AttachTaskToSessionInput) (*AttachTaskToSessionOutput, error) {
	if input == nil || input.SessionID == "" || input.TaskID == "" {
		return nil, ErrInvalidInput
	}

	task, err := s.taskRepo.GetTask(ctx, &taskRepo.GetTaskInput{
		TaskID: input.TaskID,
	})
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	output, err := s.UpdateSessionTask(ctx, &UpdateSessionTaskInput{
		SessionID: input.SessionID,
		TaskID:    task.ID,
	})
	if err != nil {
		return nil, err
	}

	return &AttachTaskToSessionOutput{
		Session: output.Session,
		Task:    task,
		Changed: output.Changed,
	}, nil
}

// SavePosition appends a position to a session. Coordinates are stored as given.
func (s *service) SavePosition(ctx context.Context, input *SavePositionInput) (*SavePositionOutput, error) {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = s.clock.Now()
	}

	position := &models.Position{
		ID:        s.uuidGenerator.NewUUID(),
		UserID:    input.UserID,
		SessionID: input.SessionID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Timestamp: timestamp,
	}

	if err := s.sessionRepo.SavePosition(ctx, &sessionRepo.SavePositionInput{
		Position: position,
	}); err != nil {
		return nil, fmt.Errorf("failed to save position: %w", err)
	}

	return &SavePositionOutput{
		Position: position,
	}, nil
}

// GetUserActiveTask returns the user's most recently updated in-progress task
func (s *service) GetUserActiveTask(ctx context.Context, input *GetUserActiveTaskInput) (*GetUserActiveTaskOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	task, err := s.taskRepo.GetUserActiveTask(ctx, &taskRepo.GetUserActiveTaskInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return &GetUserActiveTaskOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get active task: %w", err)
	}

	return &GetUserActiveTaskOutput{
		Task: task,
	}, nil
}

// EndSessionsForTask closes every open session bound to a task, paused ones included
func (s *service) EndSessionsForTask(ctx context.Context, input *EndSessionsForTaskInput) (*EndSessionsForTaskOutput, error) {
	if input == nil || input.TaskID == "" {
		return nil, ErrInvalidInput
	}

	repo := s.sessionRepo
	if input.Tx != nil {
		repo = repo.WithTx(input.Tx)
	}

	output, err := repo.EndSessionsForTask(ctx, &sessionRepo.EndSessionsForTaskInput{
		TaskID:  input.TaskID,
		EndTime: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to end sessions for task: %w", err)
	}

	s.logger.Info("sessions ended for task", "taskID", input.TaskID, "count", len(output.Sessions))

	return &EndSessionsForTaskOutput{
		Sessions: output.Sessions,
	}, nil
}

// GetUserRecentPositions returns the user's latest positions, newest first
func (s *service) GetUserRecentPositions(ctx context.Context, input *GetUserRecentPositionsInput) (*GetUserRecentPositionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentPositionsLimit
	}

	output, err := s.sessionRepo.ListUserPositions(ctx, &sessionRepo.ListUserPositionsInput{
		UserID: input.UserID,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user positions: %w", err)
	}

	return &GetUserRecentPositionsOutput{
		Positions: output.Positions,
	}, nil
}

// ResolveUser looks a worker up by Telegram ID
func (s *service) ResolveUser(ctx context.Context, input *ResolveUserInput) (*ResolveUserOutput, error) {
	if input == nil || input.TelegramID == 0 {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByTelegramID(ctx, &userRepo.GetUserByTelegramIDInput{
		TelegramID: input.TelegramID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return &ResolveUserOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &ResolveUserOutput{
		User: user,
	}, nil
}

// TouchLastSeen records that a location update from the worker was just accepted
func (s *service) TouchLastSeen(ctx context.Context, input *TouchLastSeenInput) error {
	if input == nil || input.TelegramID == 0 {
		return ErrInvalidInput
	}

	if err := s.lastSeenRepo.Touch(ctx, &lastSeenRepo.TouchInput{
		TelegramID: input.TelegramID,
		SeenAt:     s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("failed to touch last seen: %w", err)
	}

	return nil
}

// ForgetLastSeen stops watching the worker for missed updates
func (s *service) ForgetLastSeen(ctx context.Context, input *ForgetLastSeenInput) error {
	if input == nil || input.TelegramID == 0 {
		return ErrInvalidInput
	}

	if err := s.lastSeenRepo.Forget(ctx, &lastSeenRepo.ForgetInput{
		TelegramID: input.TelegramID,
		SeenAt:     input.SeenAt,
	}); err != nil {
		return fmt.Errorf("failed to forget last seen: %w", err)
	}

	return nil
}

// ListStaleUsers returns the workers whose last update is older than the timeout
func (s *service) ListStaleUsers(ctx context.Context, input *ListStaleUsersInput) (*ListStaleUsersOutput, error) {
	if input == nil || input.Timeout <= 0 {
		return nil, ErrInvalidInput
	}

	output, err := s.lastSeenRepo.ListStale(ctx, &lastSeenRepo.ListStaleInput{
		Before: s.clock.Now().Add(-input.Timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stale users: %w", err)
	}

	return &ListStaleUsersOutput{
		Entries: output.Entries,
	}, nil
}

func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (s *service) setActive(ctx context.Context, sessionID string, active bool) (*models.Session, error) {
	session, err := s.sessionRepo.SetSessionActive(ctx, &sessionRepo.SetSessionActiveInput{
		SessionID: sessionID,
		IsActive:  active,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to set session active=%t: %w", active, err)
	}

	return session, nil
}
