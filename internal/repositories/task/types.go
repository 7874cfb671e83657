package task

import (
	"time"

	"github.com/fieldtrack/fieldtrack/internal/models"
)

// GetTaskInput contains parameters for retrieving a task
type GetTaskInput struct {
	TaskID string
}

// GetUserActiveTaskInput contains parameters for retrieving a user's in-progress task
type GetUserActiveTaskInput struct {
	UserID string
}

// UpdateTaskStatusInput contains parameters for changing a task's status
type UpdateTaskStatusInput struct {
	TaskID    string
	Status    models.TaskStatus
	UpdatedAt time.Time
}
