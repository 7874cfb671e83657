package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fieldtrack/fieldtrack/internal/repositories/session Repository

import (
	"context"

	"github.com/fieldtrack/fieldtrack/internal/models"
	"github.com/jmoiron/sqlx"
)

// Repository defines the interface for session and position persistence
type Repository interface {
	// WithTx returns a repository that runs its queries inside tx
	WithTx(tx *sqlx.Tx) Repository

	// CreateSession inserts a new session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetOpenSession retrieves the most recently started session of a user that has not been ended
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error)

	// SetSessionActive pauses or resumes a session
	SetSessionActive(ctx context.Context, input *SetSessionActiveInput) (*models.Session, error)

	// EndSession closes a session for good
	EndSession(ctx context.Context, input *EndSessionInput) (*models.Session, error)

	// SetSessionTask binds a task to a session
	SetSessionTask(ctx context.Context, input *SetSessionTaskInput) (*models.Session, error)

	// EndSessionsForTask closes every open session bound to a task
	EndSessionsForTask(ctx context.Context, input *EndSessionsForTaskInput) (*EndSessionsForTaskOutput, error)

	// SavePosition appends a position to a session's track
	SavePosition(ctx context.Context, input *SavePositionInput) error

	// ListSessionPositions retrieves a session's track, oldest first
	ListSessionPositions(ctx context.Context, input *ListSessionPositionsInput) (*ListPositionsOutput, error)

	// ListUserPositions retrieves a user's latest positions, newest first
	ListUserPositions(ctx context.Context, input *ListUserPositionsInput) (*ListPositionsOutput, error)
}
