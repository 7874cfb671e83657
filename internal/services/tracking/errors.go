package tracking

// TrackingError is a custom error type for session tracking errors
type TrackingError string

// Error implements the error interface
func (e TrackingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  TrackingError = "session not found"
	ErrSessionEnded     TrackingError = "session has already ended"
	ErrTaskNotFound     TrackingError = "task not found"
	ErrUserNotFound     TrackingError = "user not found"
	ErrInvalidInput     TrackingError = "invalid input"
	ErrInvalidWorkHours TrackingError = "invalid working hours"
	ErrNilConfig        TrackingError = "config cannot be nil"
	ErrNilSessionRepo   TrackingError = "session repository cannot be nil"
	ErrNilTaskRepo      TrackingError = "task repository cannot be nil"
	ErrNilUserRepo      TrackingError = "user repository cannot be nil"
	ErrNilLastSeenRepo  TrackingError = "last seen repository cannot be nil"
	ErrNilClock         TrackingError = "clock cannot be nil"
	ErrNilUUIDGenerator TrackingError = "UUID generator cannot be nil"
)
