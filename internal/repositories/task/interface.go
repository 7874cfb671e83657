package task

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fieldtrack/fieldtrack/internal/repositories/task Repository

import (
	"context"

	"github.com/fieldtrack/fieldtrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// Repository defines the subset of task persistence the tracker relies on
type Repository interface {
	// WithTx returns a repository that runs its queries inside tx
	WithTx(tx *sqlx.Tx) Repository

	// GetTask retrieves a task by ID
	GetTask(ctx context.Context, input *GetTaskInput) (*models.Task, error)

	// GetUserActiveTask retrieves the most recently updated in-progress task assigned to a user
	GetUserActiveTask(ctx context.Context, input *GetUserActiveTaskInput) (*models.Task, error)

	// UpdateTaskStatus moves a task to a new status
	UpdateTaskStatus(ctx context.Context, input *UpdateTaskStatusInput) (*models.Task, error)
}
