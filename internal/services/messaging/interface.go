package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetLocationMessage returns the text sent to a worker about location tracking
	GetLocationMessage(ctx context.Context, input *GetLocationMessageInput) (*GetLocationMessageOutput, error)

	// GetTaskMessage returns the text sent to a worker about a task command
	GetTaskMessage(ctx context.Context, input *GetTaskMessageInput) (*GetTaskMessageOutput, error)

	// GetDispatchMessage returns the alert posted to the dispatch channel
	GetDispatchMessage(ctx context.Context, input *GetDispatchMessageInput) (*GetDispatchMessageOutput, error)
}
