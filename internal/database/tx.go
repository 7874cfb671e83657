package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_transactor.go github.com/fieldtrack/fieldtrack/internal/database Transactor

// Transactor runs a function inside a single database transaction
type Transactor interface {
	// InTx commits when fn returns nil and rolls back otherwise
	InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// InTx implements Transactor
func (db *DB) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
