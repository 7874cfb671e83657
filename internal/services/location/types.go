package location

import (
	"log/slog"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/common/clock"
	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	"github.com/fieldtrack/fieldtrack/internal/services/notification"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
)

// DefaultMaxMessageAge is how old a plain location message may be before it is ignored
const DefaultMaxMessageAge = 120 * time.Second

// Action describes what HandleLocation did with an update
type Action string

const (
	// ActionDiscarded means a stale plain location message was ignored
	ActionDiscarded Action = "discarded"

	// ActionNotRegistered means the sender is not a known worker
	ActionNotRegistered Action = "not_registered"

	// ActionInstructions means a plain location was answered with live sharing instructions
	ActionInstructions Action = "instructions"

	// ActionStopped means the worker stopped sharing and the session was paused
	ActionStopped Action = "stopped"

	// ActionCreated means a new session was started
	ActionCreated Action = "created"

	// ActionReactivated means a paused session was resumed
	ActionReactivated Action = "reactivated"

	// ActionContinued means the update was recorded against an already active session
	ActionContinued Action = "continued"

	// ActionFailed means processing stopped on an error
	ActionFailed Action = "failed"
)

// Config holds configuration for the location service
type Config struct {
	// MaxMessageAge defaults to DefaultMaxMessageAge
	MaxMessageAge time.Duration

	// Service dependencies
	Tracker   tracking.Service
	Messaging messaging.Service
	Notifier  notification.Notifier
	Clock     clock.Clock
	Logger    *slog.Logger
}

// HandleLocationInput is one inbound location update
type HandleLocationInput struct {
	TelegramID int64
	ChatID     int64
	Latitude   float64
	Longitude  float64

	// LivePeriod is the declared live sharing period in seconds, zero for a plain location or a stopped share
	LivePeriod int

	// Timestamp is when the message was sent
	Timestamp time.Time

	// IsEdit is true for updates to an existing live location message
	IsEdit bool
}

// HandleLocationOutput describes the outcome of an update
type HandleLocationOutput struct {
	Action Action

	// SessionID is set on every live path
	SessionID string

	// TaskID is set when a task was bound to the session by this update
	TaskID string
}
