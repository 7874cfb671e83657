package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/models"
	"github.com/jmoiron/sqlx"
)

const tasksTable = "tasks"

var taskColumns = []string{"id", "title", "description", "status", "assigned_to", "company_id", "created_at", "updated_at"}

// ErrTaskNotFound is returned when a task is not found
var ErrTaskNotFound = errors.New("task not found")

// Config holds configuration for the Postgres task repository
type Config struct {
	DB     *database.DB
	Logger *slog.Logger
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	db      sqlx.ExtContext
	builder squirrel.StatementBuilderType
	logger  *slog.Logger
}

// NewPostgres creates a new Postgres-backed task repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &postgresRepository{
		db:      cfg.DB,
		builder: cfg.DB.Builder,
		logger:  logger.With("repository", "task"),
	}, nil
}

// WithTx returns a copy of the repository bound to tx
func (r *postgresRepository) WithTx(tx *sqlx.Tx) Repository {
	return &postgresRepository{
		db:      tx,
		builder: r.builder,
		logger:  r.logger,
	}
}

// GetTask retrieves a task by ID
func (r *postgresRepository) GetTask(ctx context.Context, input *GetTaskInput) (*models.Task, error) {
	if input == nil || input.TaskID == "" {
		return nil, errors.New("input and task ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"id": input.TaskID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "get task", query, args)
}

// GetUserActiveTask retrieves the user's in-progress task, most recent first
func (r *postgresRepository) GetUserActiveTask(ctx context.Context, input *GetUserActiveTaskInput) (*models.Task, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"assigned_to": input.UserID}).
		Where(squirrel.Eq{"status": models.TaskStatusInProgress}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "get user active task", query, args)
}

// UpdateTaskStatus moves a task to a new status
func (r *postgresRepository) UpdateTaskStatus(ctx context.Context, input *UpdateTaskStatusInput) (*models.Task, error) {
	if input == nil || input.TaskID == "" || input.Status == "" {
		return nil, errors.New("input, task ID and status cannot be empty")
	}

	query, args, err := r.builder.
		Update(tasksTable).
		Set("status", input.Status).
		Set("updated_at", input.UpdatedAt).
		Where(squirrel.Eq{"id": input.TaskID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "update task status", query, args)
}

func (r *postgresRepository) getOne(ctx context.Context, name, query string, args []any) (*models.Task, error) {
	logger := r.logger.With("query", name)
	logger.Debug("build query", "sql", query, "args", args)

	var task models.Task
	if err := sqlx.GetContext(ctx, r.db, &task, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrTaskNotFound
		}

		logger.Warn("failed query execute", "error", err)

		return nil, fmt.Errorf("failed to %s: %w", name, err)
	}

	logger.Debug("success query execute", "taskId", task.ID, "status", task.Status)

	return &task, nil
}
