package models

import "time"

// Position is a single location fix recorded against a session.
// Positions are append-only.
type Position struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	SessionID string    `db:"session_id"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Timestamp time.Time `db:"recorded_at"`
}
