package session

import (
	"time"

	"github.com/fieldtrack/fieldtrack/internal/models"
)

// CreateSessionInput contains parameters for inserting a session
type CreateSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetOpenSessionInput contains parameters for retrieving a user's open session
type GetOpenSessionInput struct {
	UserID string
}

// SetSessionActiveInput contains parameters for pausing or resuming a session
type SetSessionActiveInput struct {
	SessionID string
	IsActive  bool
	UpdatedAt time.Time
}

// EndSessionInput contains parameters for closing a session
type EndSessionInput struct {
	SessionID string
	EndTime   time.Time
}

// SetSessionTaskInput contains parameters for binding a task to a session
type SetSessionTaskInput struct {
	SessionID string
	TaskID    string
	UpdatedAt time.Time
}

// EndSessionsForTaskInput contains parameters for closing a task's sessions
type EndSessionsForTaskInput struct {
	TaskID  string
	EndTime time.Time
}

// EndSessionsForTaskOutput contains the sessions that were closed
type EndSessionsForTaskOutput struct {
	Sessions []*models.Session
}

// SavePositionInput contains parameters for appending a position
type SavePositionInput struct {
	Position *models.Position
}

// ListSessionPositionsInput contains parameters for retrieving a session's track
type ListSessionPositionsInput struct {
	SessionID string
}

// ListUserPositionsInput contains parameters for retrieving a user's latest positions
type ListUserPositionsInput struct {
	UserID string
	Limit  int
}

// ListPositionsOutput contains retrieved positions
type ListPositionsOutput struct {
	Positions []*models.Position
}
