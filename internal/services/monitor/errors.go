package monitor

// MonitorError is a custom error type for connectivity monitor errors
type MonitorError string

// Error implements the error interface
func (e MonitorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyStarted MonitorError = "monitor already started"
	ErrNilConfig      MonitorError = "config cannot be nil"
	ErrNilTracker     MonitorError = "tracking service cannot be nil"
	ErrNilMessaging   MonitorError = "messaging service cannot be nil"
	ErrNilNotifier    MonitorError = "notifier cannot be nil"
)
