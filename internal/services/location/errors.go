package location

// LocationError is a custom error type for location ingest errors
type LocationError string

// Error implements the error interface
func (e LocationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidInput LocationError = "invalid location update"
	ErrNilConfig    LocationError = "config cannot be nil"
	ErrNilTracker   LocationError = "tracking service cannot be nil"
	ErrNilMessaging LocationError = "messaging service cannot be nil"
	ErrNilNotifier  LocationError = "notifier cannot be nil"
	ErrNilClock     LocationError = "clock cannot be nil"
)
