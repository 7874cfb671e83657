package models

import (
	"time"
)

// Session is a contiguous, possibly paused, period during which a worker's
// device is expected to report live location
type Session struct {
	// ID is the unique identifier for this session
	ID string `db:"id"`

	// UserID is the internal ID of the worker being tracked
	UserID string `db:"user_id"`

	// TaskID is the task the session is bound to, nil for location-only tracking
	TaskID *string `db:"task_id"`

	// StartTime is when the session was created
	StartTime time.Time `db:"start_time"`

	// EndTime is set only when the session is closed for good
	EndTime *time.Time `db:"end_time"`

	// IsActive is false while the session is paused
	IsActive bool `db:"is_active"`

	UpdatedAt time.Time `db:"updated_at"`
}

// IsOpen reports whether the session has not been ended yet.
// An open session may still be paused.
func (s *Session) IsOpen() bool {
	return s.EndTime == nil
}

// HasTask reports whether a task is bound to the session
func (s *Session) HasTask() bool {
	return s.TaskID != nil && *s.TaskID != ""
}

// BoundTo reports whether the session is bound to the given task
func (s *Session) BoundTo(taskID string) bool {
	return s.HasTask() && *s.TaskID == taskID
}
