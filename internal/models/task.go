package models

import (
	"time"
)

// TaskStatus represents where a task is in its lifecycle
type TaskStatus string

const (
	// TaskStatusAssigned indicates a manager assigned the task to a worker
	TaskStatusAssigned TaskStatus = "assigned"

	// TaskStatusAccepted indicates the worker accepted the task
	TaskStatusAccepted TaskStatus = "accepted"

	// TaskStatusInProgress indicates the worker is doing the task right now
	TaskStatusInProgress TaskStatus = "in-progress"

	// TaskStatusCompleted indicates the task is done
	TaskStatusCompleted TaskStatus = "completed"

	// TaskStatusCancelled indicates the task was called off
	TaskStatusCancelled TaskStatus = "cancelled"
)

// IsInProgress returns true if the task is being worked on
func (s TaskStatus) IsInProgress() bool {
	return s == TaskStatusInProgress
}

// IsTerminal returns true if the task can no longer change status
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// CanStart returns true if a worker may start the task from this status
func (s TaskStatus) CanStart() bool {
	return s == TaskStatusAssigned || s == TaskStatusAccepted
}

// Task is a unit of field work assigned to a worker
type Task struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      TaskStatus `db:"status"`
	AssignedTo  *string    `db:"assigned_to"`
	CompanyID   *string    `db:"company_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// IsAssignedTo reports whether the task belongs to the given user
func (t *Task) IsAssignedTo(userID string) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}
