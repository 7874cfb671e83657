package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/models"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{"id", "telegram_id", "chat_id", "name", "company_id", "created_at"}

var companyColumns = []string{"id", "name", "work_start", "work_end", "timezone"}

var (
	// ErrUserNotFound is returned when a worker is not registered
	ErrUserNotFound = errors.New("user not found")

	// ErrCompanyNotFound is returned when a company is not found
	ErrCompanyNotFound = errors.New("company not found")
)

// Config holds configuration for the Postgres user repository
type Config struct {
	DB     *database.DB
	Logger *slog.Logger
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	db      sqlx.QueryerContext
	builder squirrel.StatementBuilderType
	logger  *slog.Logger
}

// NewPostgres creates a new Postgres-backed user repository
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
		logger:  logger.With("repository", "user"),
	}, nil
}

// GetUserByTelegramID retrieves a registered worker by Telegram user ID
func (r *postgresRepository) GetUserByTelegramID(ctx context.Context, input *GetUserByTelegramIDInput) (*models.User, error) {
	if input == nil || input.TelegramID == 0 {
		return nil, errors.New("input and telegram ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"telegram_id": input.TelegramID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getUser(ctx, query, args)
}

// GetUser retrieves a worker by internal ID
func (r *postgresRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": input.UserID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.getUser(ctx, query, args)
}

// GetCompany retrieves a company by ID
func (r *postgresRepository) GetCompany(ctx context.Context, input *GetCompanyInput) (*models.Company, error) {
	if input == nil || input.CompanyID == "" {
		return nil, errors.New("input and company ID cannot be empty")
	}

	query, args, err := r.builder.
		Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"id": input.CompanyID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	r.logger.Debug("build query", "sql", query, "args", args)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.db, &company, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &company, nil
}

func (r *postgresRepository) getUser(ctx context.Context, query string, args []any) (*models.User, error) {
	r.logger.Debug("build query", "sql", query, "args", args)

	var user models.User
	if err := sqlx.GetContext(ctx, r.db, &user, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, ErrUserNotFound
		}

		r.logger.Warn("failed query execute", "error", err)

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
