package task

// TaskError is a custom error type for task lifecycle errors
type TaskError string

// Error implements the error interface
func (e TaskError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTaskNotFound          TaskError = "task not found"
	ErrTaskNotAssigned       TaskError = "task is not assigned to this worker"
	ErrTaskAlreadyInProgress TaskError = "another task is already in progress"
	ErrInvalidStatus         TaskError = "task cannot move to the requested status"
	ErrInvalidInput          TaskError = "invalid input"
	ErrNilConfig             TaskError = "config cannot be nil"
	ErrNilTransactor         TaskError = "transactor cannot be nil"
	ErrNilTaskRepo           TaskError = "task repository cannot be nil"
	ErrNilTracker            TaskError = "tracking service cannot be nil"
	ErrNilClock              TaskError = "clock cannot be nil"
)
