// Package database wraps the Postgres connection used by the repositories.
package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	_defaultTimeout = 5 * time.Second
	_driverName     = "pgx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Config holds configuration for the database connection
type Config struct {
	// DSN is a postgres:// connection URL
	DSN string

	// AutoMigrate applies pending migrations on connect
	AutoMigrate bool

	Logger *slog.Logger
}

type DB struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
}

// New connects to Postgres and optionally applies migrations
func New(ctx context.Context, cfg *Config) (*DB, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DSN == "" {
		return nil, errors.New("dsn cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(ctx, _defaultTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, _driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if cfg.AutoMigrate {
		if err := Migrate(cfg.DSN); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	return Wrap(db), nil
}

// Wrap builds a DB around an existing sqlx connection
func Wrap(db *sqlx.DB) *DB {
	return &DB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Migrate applies all pending up migrations
func Migrate(dsn string) error {
	iofsDriver, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
