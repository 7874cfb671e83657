package lastseen

import "time"

// Entry is one worker's last-seen record
type Entry struct {
	TelegramID int64
	SeenAt     time.Time
}

// TouchInput contains parameters for recording a location update
type TouchInput struct {
	TelegramID int64
	SeenAt     time.Time
}

// ForgetInput contains parameters for dropping a worker's record
type ForgetInput struct {
	TelegramID int64

	// SeenAt, when set, drops the record only if it was not touched after
	// this time. Zero drops it unconditionally.
	SeenAt time.Time
}

// ListStaleInput contains parameters for finding workers not seen recently
type ListStaleInput struct {
	// Before is the cutoff; entries seen strictly before it are stale
	Before time.Time
}

// ListStaleOutput contains the stale entries, oldest first
type ListStaleOutput struct {
	Entries []*Entry
}
