package tracking

import (
	"log/slog"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/common/uuid"
	"github.com/fieldtrack/fieldtrack/internal/models"
	lastSeenRepo "github.com/fieldtrack/fieldtrack/internal/repositories/lastseen"
	sessionRepo "github.com/fieldtrack/fieldtrack/internal/repositories/session"
	taskRepo "github.com/fieldtrack/fieldtrack/internal/repositories/task"
	userRepo "github.com/fieldtrack/fieldtrack/internal/repositories/user"
	"github.com/jmoiron/sqlx"
)

// DefaultRecentPositionsLimit is used when GetUserRecentPositions is called without a limit
const DefaultRecentPositionsLimit = 10

// Config holds configuration for the tracking service
type Config struct {
	// Repository dependencies
	SessionRepo  sessionRepo.Repository
	TaskRepo     taskRepo.Repository
	UserRepo     userRepo.Repository
	LastSeenRepo lastSeenRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// GetActiveSessionInput contains parameters for finding a user's open session
type GetActiveSessionInput struct {
	UserID string
}

// GetActiveSessionOutput contains the open session
type GetActiveSessionOutput struct {
	// Session is nil when the user has no open session
	Session *models.Session
}

// CreateSessionInput contains parameters for starting a session
type CreateSessionInput struct {
	UserID string
	TaskID *string
}

// CreateSessionOutput contains the started session
type CreateSessionOutput struct {
	Session *models.Session

	// Existing is true when another update opened a session first and that one was returned
	Existing bool
}

// ReactivateSessionInput contains parameters for resuming a session
type ReactivateSessionInput struct {
	SessionID string
}

// ReactivateSessionOutput contains the resumed session
type ReactivateSessionOutput struct {
	Session *models.Session
}

// DeactivateSessionInput contains parameters for pausing a session
type DeactivateSessionInput struct {
	SessionID string
}

// DeactivateSessionOutput contains the paused session
type DeactivateSessionOutput struct {
	Session *models.Session
}

// EndSessionInput contains parameters for closing a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput contains the closed session
type EndSessionOutput struct {
	Session *models.Session
}

// UpdateSessionTaskInput contains parameters for binding a task to a session
type UpdateSessionTaskInput struct {
	SessionID string
	TaskID    string
}

// UpdateSessionTaskOutput contains the updated session
type UpdateSessionTaskOutput struct {
	Session *models.Session

	// Changed is false when the session was already bound to the task
	Changed bool
}

// AttachTaskToSessionInput contains parameters for binding an existing task to a session
type AttachTaskToSessionInput struct {
	SessionID string
	TaskID    string
}

// AttachTaskToSessionOutput contains the updated session and the bound task
type AttachTaskToSessionOutput struct {
	Session *models.Session
	Task    *models.Task
	Changed bool
}

// SavePositionInput contains parameters for recording a position
type SavePositionInput struct {
	UserID    string
	SessionID string
	Latitude  float64
	Longitude float64

	// Timestamp defaults to now when zero
	Timestamp time.Time
}

// SavePositionOutput contains the recorded position
type SavePositionOutput struct {
	Position *models.Position
}

// GetUserActiveTaskInput contains parameters for finding a user's in-progress task
type GetUserActiveTaskInput struct {
	UserID string
}

// GetUserActiveTaskOutput contains the in-progress task
type GetUserActiveTaskOutput struct {
	// Task is nil when the user has no task in progress
	Task *models.Task
}

// EndSessionsForTaskInput contains parameters for closing a task's sessions
type EndSessionsForTaskInput struct {
	TaskID string

	// Tx runs the close inside a caller's transaction when set
	Tx *sqlx.Tx
}

// EndSessionsForTaskOutput contains the closed sessions
type EndSessionsForTaskOutput struct {
	Sessions []*models.Session
}

// IsWorkingHoursInput contains parameters for the working hours check
type IsWorkingHoursInput struct {
	UserID string
}

// IsWorkingHoursOutput contains the result of the working hours check
type IsWorkingHoursOutput struct {
	WorkingHours bool
}

// GetSessionStatsInput contains parameters for summarising a session
type GetSessionStatsInput struct {
	SessionID string
}

// GetSessionStatsOutput contains the session summary
type GetSessionStatsOutput struct {
	Stats *models.SessionStats
}

// GetUserRecentPositionsInput contains parameters for retrieving a user's latest positions
type GetUserRecentPositionsInput struct {
	UserID string
	Limit  int
}

// GetUserRecentPositionsOutput contains the positions, newest first
type GetUserRecentPositionsOutput struct {
	Positions []*models.Position
}

// ResolveUserInput contains parameters for looking a worker up
type ResolveUserInput struct {
	TelegramID int64
}

// ResolveUserOutput contains the worker
type ResolveUserOutput struct {
	// User is nil when the Telegram account is not registered
	User *models.User
}

// TouchLastSeenInput contains parameters for recording an accepted update
type TouchLastSeenInput struct {
	TelegramID int64
}

// ForgetLastSeenInput contains parameters for dropping a worker's last-seen entry
type ForgetLastSeenInput struct {
	TelegramID int64

	// SeenAt keeps the entry if the worker was seen after it. Zero always drops it.
	SeenAt time.Time
}

// ListStaleUsersInput contains parameters for finding silent workers
type ListStaleUsersInput struct {
	Timeout time.Duration
}

// ListStaleUsersOutput contains the silent workers, oldest first
type ListStaleUsersOutput struct {
	Entries []*lastSeenRepo.Entry
}
