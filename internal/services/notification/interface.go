package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/fieldtrack/fieldtrack/internal/services/notification Notifier
//go:generate mockgen -package=mocks -destination=mocks/mock_dispatcher.go github.com/fieldtrack/fieldtrack/internal/services/notification Dispatcher

import (
	"context"
)

// Notifier sends text to a worker
type Notifier interface {
	// Notify sends a message to a worker's chat
	Notify(ctx context.Context, input *NotifyInput) error
}

// Dispatcher posts alerts for the people dispatching work
type Dispatcher interface {
	// Dispatch posts an alert to the dispatch channel
	Dispatch(ctx context.Context, input *DispatchInput) error
}
