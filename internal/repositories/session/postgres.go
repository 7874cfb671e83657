package session

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

const (
	sessionsTable  = "sessions"
	positionsTable = "positions"
)

var sessionColumns = []string{"id", "user_id", "task_id", "start_time", "end_time", "is_active", "updated_at"}

var positionColumns = []string{"id", "user_id", "session_id", "latitude", "longitude", "recorded_at"}

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrOpenSessionExists is returned when the user already has an open or active session
	ErrOpenSessionExists = errors.New("user already has an open session")
)

// Config holds configuration for the Postgres session repository
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

// NewPostgres creates a new Postgres-backed session repository
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
		logger:  logger.With("repository", "session"),
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

// CreateSession inserts a new session
func (r *postgresRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	s := input.Session
	if s.ID == "" || s.UserID == "" {
		return nil, errors.New("session ID and user ID cannot be empty")
	}

	query, args, err := r.builder.
		Insert(sessionsTable).
		Columns("id", "user_id", "task_id", "start_time", "end_time", "is_active", "updated_at").
		Values(s.ID, s.UserID, s.TaskID, s.StartTime, s.EndTime, s.IsActive, s.UpdatedAt).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	r.logger.Debug("build query", "sql", query, "args", args)

	var created models.Session
	if err := sqlx.GetContext(ctx, r.db, &created, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrOpenSessionExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &created, nil
}

// GetSession retrieves a session by ID
func (r *postgresRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"id": input.SessionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "get session", query, args)
}

// GetOpenSession retrieves the user's most recently started session that has not been ended
func (r *postgresRepository) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"user_id": input.UserID}).
		Where(squirrel.Eq{"end_time": nil}).
		OrderBy("start_time DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "get open session", query, args)
}

// SetSessionActive pauses or resumes a session. The end time is never touched here.
func (r *postgresRepository) SetSessionActive(ctx context.Context, input *SetSessionActiveInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	query, args, err := r.builder.
		Update(sessionsTable).
		Set("is_active", input.IsActive).
		Set("updated_at", input.UpdatedAt).
		Where(squirrel.Eq{"id": input.SessionID}).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	session, err := r.getOne(ctx, "set session active", query, args)
	if err != nil && database.IsUniqueViolation(err) {
		return nil, ErrOpenSessionExists
	}
	return session, err
}

// EndSession closes a session. An already ended session keeps its original end time.
func (r *postgresRepository) EndSession(ctx context.Context, input *EndSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	query, args, err := r.builder.
		Update(sessionsTable).
		Set("is_active", false).
		Set("end_time", squirrel.Expr("COALESCE(end_time, ?)", input.EndTime)).
		Set("updated_at", input.EndTime).
		Where(squirrel.Eq{"id": input.SessionID}).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "end session", query, args)
}

// SetSessionTask binds a task to a session
func (r *postgresRepository) SetSessionTask(ctx context.Context, input *SetSessionTaskInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" || input.TaskID == "" {
		return nil, errors.New("input, session ID and task ID cannot be empty")
	}

	query, args, err := r.builder.
		Update(sessionsTable).
		Set("task_id", input.TaskID).
		Set("updated_at", input.UpdatedAt).
		Where(squirrel.Eq{"id": input.SessionID}).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "set session task", query, args)
}

// EndSessionsForTask closes every open session bound to a task, paused ones included
func (r *postgresRepository) EndSessionsForTask(ctx context.Context, input *EndSessionsForTaskInput) (*EndSessionsForTaskOutput, error) {
	if input == nil || input.TaskID == "" {
		return nil, errors.New("input and task ID cannot be empty")
	}

	query, args, err := r.builder.
		Update(sessionsTable).
		Set("is_active", false).
		Set("end_time", input.EndTime).
		Set("updated_at", input.EndTime).
		Where(squirrel.Eq{"task_id": input.TaskID}).
		Where(squirrel.Eq{"end_time": nil}).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	r.logger.Debug("build query", "sql", query, "args", args)

	sessions := []*models.Session{}
	if err := sqlx.SelectContext(ctx, r.db, &sessions, query, args...); err != nil {
		r.logger.Warn("failed query execute", "query", "end sessions for task", "error", err)
		return nil, fmt.Errorf("failed to end sessions for task: %w", err)
	}

	r.logger.Debug("success query execute", "query", "end sessions for task", "countSessions", len(sessions))

	return &EndSessionsForTaskOutput{
		Sessions: sessions,
	}, nil
}

// SavePosition appends a position to a session's track
func (r *postgresRepository) SavePosition(ctx context.Context, input *SavePositionInput) error {
	if input == nil || input.Position == nil {
		return errors.New("input and position cannot be nil")
	}

	p := input.Position
	if p.ID == "" || p.SessionID == "" || p.UserID == "" {
		return errors.New("position ID, session ID and user ID cannot be empty")
	}

	query, args, err := r.builder.
		Insert(positionsTable).
		Columns(positionColumns...).
		Values(p.ID, p.UserID, p.SessionID, p.Latitude, p.Longitude, p.Timestamp).
		ToSql()
	if err != nil {
		return err
	}

	r.logger.Debug("build query", "sql", query, "args", args)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Warn("failed query execute", "query", "save position", "error", err)
		return fmt.Errorf("failed to save position: %w", err)
	}

	return nil
}

// ListSessionPositions retrieves a session's track, oldest first
func (r *postgresRepository) ListSessionPositions(ctx context.Context, input *ListSessionPositionsInput) (*ListPositionsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(positionColumns...).
		From(positionsTable).
		Where(squirrel.Eq{"session_id": input.SessionID}).
		OrderBy("recorded_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.listPositions(ctx, "list session positions", query, args)
}

// ListUserPositions retrieves a user's latest positions, newest first
func (r *postgresRepository) ListUserPositions(ctx context.Context, input *ListUserPositionsInput) (*ListPositionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	query, args, err := r.builder.
		Select(positionColumns...).
		From(positionsTable).
		Where(squirrel.Eq{"user_id": input.UserID}).
		OrderBy("recorded_at DESC").
		Limit(uint64(input.Limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.listPositions(ctx, "list user positions", query, args)
}

func (r *postgresRepository) getOne(ctx context.Context, name, query string, args []any) (*models.Session, error) {
	logger := r.logger.With("query", name)
	logger.Debug("build query", "sql", query, "args", args)

	var session models.Session
	if err := sqlx.GetContext(ctx, r.db, &session, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrSessionNotFound
		}

		logger.Warn("failed query execute", "error", err)

		return nil, fmt.Errorf("failed to %s: %w", name, err)
	}

	return &session, nil
}

func (r *postgresRepository) listPositions(ctx context.Context, name, query string, args []any) (*ListPositionsOutput, error) {
	logger := r.logger.With("query", name)
	logger.Debug("build query", "sql", query, "args", args)

	positions := []*models.Position{}
	if err := sqlx.SelectContext(ctx, r.db, &positions, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return nil, fmt.Errorf("failed to %s: %w", name, err)
	}

	logger.Debug("success query execute", "countPositions", len(positions))

	return &ListPositionsOutput{
		Positions: positions,
	}, nil
}
