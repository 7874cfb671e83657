package models

import "time"

// SessionStats summarises the track recorded for a session
type SessionStats struct {
	SessionID     string
	PositionCount int

	// FirstFix and LastFix are nil when the session has no positions
	FirstFix *time.Time
	LastFix  *time.Time

	// Duration is the time between the first and last fix
	Duration time.Duration

	// DistanceMeters is the length of the track in meters
	DistanceMeters float64
}
