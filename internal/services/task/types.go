package task

import (
	"log/slog"

	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/models"
	taskRepo "github.com/fieldtrack/fieldtrack/internal/repositories/task"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
)

// Config holds configuration for the task service
type Config struct {
	Transactor database.Transactor
	TaskRepo   taskRepo.Repository
	Tracker    tracking.Service
	Clock      clock.Clock
	Logger     *slog.Logger
}

// StartTaskInput contains parameters for starting a task
type StartTaskInput struct {
	UserID string
	TaskID string
}

// StartTaskOutput contains the started task
type StartTaskOutput struct {
	Task *models.Task

	// SessionID is the open session the task was bound to, empty when the worker is not sharing
	SessionID string
}

// FinishTaskInput contains parameters for completing or cancelling a task
type FinishTaskInput struct {
	UserID string
	TaskID string

	// TelegramID drops the worker from connectivity monitoring when set
	TelegramID int64
}

// FinishTaskOutput contains the finished task and the sessions closed with it
type FinishTaskOutput struct {
	Task           *models.Task
	ClosedSessions []*models.Session
}
