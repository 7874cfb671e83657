package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/models"
	taskRepo "github.com/fieldtrack/fieldtrack/internal/repositories/task"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
	"github.com/jmoiron/sqlx"
)

// service implements the Service interface
type service struct {
	transactor database.Transactor
	taskRepo   taskRepo.Repository
	tracker    tracking.Service
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new task service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Transactor == nil {
		return nil, ErrNilTransactor
	}

	if cfg.TaskRepo == nil {
		return nil, ErrNilTaskRepo
	}

	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		transactor: cfg.Transactor,
		taskRepo:   cfg.TaskRepo,
		tracker:    cfg.Tracker,
		clock:      cfg.Clock,
		logger:     logger.With("service", "task"),
	}, nil
}

// StartTask puts an assigned task in progress. A worker may only have one
// task in progress at a time.
func (s *service) StartTask(ctx context.Context, input *StartTaskInput) (*StartTaskOutput, error) {
	if input == nil || input.UserID == "" || input.TaskID == "" {
		return nil, ErrInvalidInput
	}

	task, err := s.getOwnTask(ctx, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if !task.Status.IsInProgress() {
		if !task.Status.CanStart() {
			return nil, ErrInvalidStatus
		}

		current, err := s.tracker.GetUserActiveTask(ctx, &tracking.GetUserActiveTaskInput{
			UserID: input.UserID,
		})
		if err != nil {
			return nil, err
		}

		if current.Task != nil && current.Task.ID != task.ID {
			return nil, ErrTaskAlreadyInProgress
		}

		task, err = s.taskRepo.UpdateTaskStatus(ctx, &taskRepo.UpdateTaskStatusInput{
			TaskID:    task.ID,
			Status:    models.TaskStatusInProgress,
			UpdatedAt: s.clock.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start task: %w", err)
		}

		s.logger.Info("task started", "taskID", task.ID, "userID", input.UserID)
	}

	output := &StartTaskOutput{
		Task: task,
	}

	active, err := s.tracker.GetActiveSession(ctx, &tracking.GetActiveSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	if active.Session == nil {
		return output, nil
	}

	if !active.Session.HasTask() {
		if _, err := s.tracker.AttachTaskToSession(ctx, &tracking.AttachTaskToSessionInput{
			SessionID: active.Session.ID,
			TaskID:    task.ID,
		}); err != nil {
			return nil, err
		}
	}

	output.SessionID = active.Session.ID

	return output, nil
}

// CompleteTask marks an in-progress task completed
func (s *service) CompleteTask(ctx context.Context, input *FinishTaskInput) (*FinishTaskOutput, error) {
	return s.finish(ctx, input, models.TaskStatusCompleted)
}

// CancelTask marks an unfinished task cancelled
func (s *service) CancelTask(ctx context.Context, input *FinishTaskInput) (*FinishTaskOutput, error) {
	return s.finish(ctx, input, models.TaskStatusCancelled)
}

// finish moves the task to a terminal status. The status change and the
// closing of its sessions commit or roll back together.
func (s *service) finish(ctx context.Context, input *FinishTaskInput, status models.TaskStatus) (*FinishTaskOutput, error) {
	if input == nil || input.UserID == "" || input.TaskID == "" {
		return nil, ErrInvalidInput
	}

	task, err := s.getOwnTask(ctx, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if task.Status.IsTerminal() {
		return nil, ErrInvalidStatus
	}

	if status == models.TaskStatusCompleted && !task.Status.IsInProgress() {
		return nil, ErrInvalidStatus
	}

	output := &FinishTaskOutput{}

	err = s.transactor.InTx(ctx, func(tx *sqlx.Tx) error {
		updated, err := s.taskRepo.WithTx(tx).UpdateTaskStatus(ctx, &taskRepo.UpdateTaskStatusInput{
			TaskID:    task.ID,
			Status:    status,
			UpdatedAt: s.clock.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}

		closed, err := s.tracker.EndSessionsForTask(ctx, &tracking.EndSessionsForTaskInput{
			TaskID: task.ID,
			Tx:     tx,
		})
		if err != nil {
			return err
		}

		output.Task = updated
		output.ClosedSessions = closed.Sessions
		return nil
	})
	if err != nil {
		s.logger.Error("failed to finish task", "taskID", task.ID, "status", status, "error", err)
		return nil, err
	}

	s.logger.Info("task finished", "taskID", task.ID, "status", status, "closedSessions", len(output.ClosedSessions))

	if input.TelegramID != 0 {
		if err := s.tracker.ForgetLastSeen(ctx, &tracking.ForgetLastSeenInput{
			TelegramID: input.TelegramID,
		}); err != nil {
			s.logger.Warn("failed to forget last seen", "telegramID", input.TelegramID, "error", err)
		}
	}

	return output, nil
}

func (s *service) getOwnTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.GetTask(ctx, &taskRepo.GetTaskInput{
		TaskID: taskID,
	})
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if !task.IsAssignedTo(userID) {
		return nil, ErrTaskNotAssigned
	}

	return task, nil
}
