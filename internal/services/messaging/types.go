package messaging

// MessageType represents different categories of messages
type MessageType string

const (
	// MessageTypeNotRegistered is sent to Telegram users that are not workers
	MessageTypeNotRegistered MessageType = "not_registered"

	// MessageTypeEnableLiveSharing explains how to share live location
	MessageTypeEnableLiveSharing MessageType = "enable_live_sharing"

	// MessageTypeTrackingStarted is sent on the first share when no task is bound
	MessageTypeTrackingStarted MessageType = "tracking_started"

	// MessageTypeTaskBound is sent when a session is bound to a task
	MessageTypeTaskBound MessageType = "task_bound"

	// MessageTypeTrackingStopped is sent when the worker stops sharing
	MessageTypeTrackingStopped MessageType = "tracking_stopped"

	// MessageTypeConnectionRestored is sent when a paused session resumes
	MessageTypeConnectionRestored MessageType = "connection_restored"

	// MessageTypeConnectionLost is sent when the monitor pauses a silent session
	MessageTypeConnectionLost MessageType = "connection_lost"

	// MessageTypeError is the generic apology
	MessageTypeError MessageType = "error"
)

const (
	// MessageTypeHelp explains the bot commands
	MessageTypeHelp MessageType = "help"

	// MessageTypeTaskStarted confirms a task was started
	MessageTypeTaskStarted MessageType = "task_started"

	// MessageTypeTaskCompleted confirms a task was completed
	MessageTypeTaskCompleted MessageType = "task_completed"

	// MessageTypeTaskCancelled confirms a task was cancelled
	MessageTypeTaskCancelled MessageType = "task_cancelled"

	// MessageTypeTaskNotFound is sent when the task does not exist or is not the worker's
	MessageTypeTaskNotFound MessageType = "task_not_found"

	// MessageTypeTaskAlreadyInProgress is sent when another task is already in progress
	MessageTypeTaskAlreadyInProgress MessageType = "task_already_in_progress"

	// MessageTypeTaskInvalidStatus is sent when the task cannot move to the requested status
	MessageTypeTaskInvalidStatus MessageType = "task_invalid_status"

	// MessageTypeUsage is sent when a command is missing its argument
	MessageTypeUsage MessageType = "usage"
)

// GetLocationMessageInput contains parameters for getting a location message
type GetLocationMessageInput struct {
	Type MessageType

	// TaskTitle switches to the task-specific wording when set
	TaskTitle string
}

// GetLocationMessageOutput contains the generated message
type GetLocationMessageOutput struct {
	Message string
}

// GetTaskMessageInput contains parameters for getting a task message
type GetTaskMessageInput struct {
	Type      MessageType
	TaskTitle string

	// Command is the command name used in usage hints
	Command string
}

// GetTaskMessageOutput contains the generated message
type GetTaskMessageOutput struct {
	Message string
}

// GetDispatchMessageInput contains parameters for a dispatch channel alert
type GetDispatchMessageInput struct {
	Type       MessageType
	WorkerName string
	TaskTitle  string
}

// GetDispatchMessageOutput contains the generated alert
type GetDispatchMessageOutput struct {
	Message string
}
