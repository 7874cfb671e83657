package monitor

import (
	"log/slog"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	"github.com/fieldtrack/fieldtrack/internal/services/notification"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
)

const (
	// DefaultInterval is how often the monitor sweeps
	DefaultInterval = 60 * time.Second

	// DefaultTimeout is how long a worker may stay silent before the session is paused
	DefaultTimeout = 3 * time.Minute
)

// Config holds configuration for the connectivity monitor
type Config struct {
	// Interval defaults to DefaultInterval
	Interval time.Duration

	// Timeout defaults to DefaultTimeout
	Timeout time.Duration

	// Service dependencies
	Tracker    tracking.Service
	Messaging  messaging.Service
	Notifier   notification.Notifier
	Dispatcher notification.Dispatcher
	Logger     *slog.Logger
}

// SweepOutput summarises one sweep
type SweepOutput struct {
	// Deactivated counts sessions paused by this sweep
	Deactivated int

	// Skipped counts stale entries with no user or no active session
	Skipped int

	// Failed counts entries left for the next sweep after an error
	Failed int
}
